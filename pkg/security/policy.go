package security

import "strings"

// SpecialCharacters is the fixed set accepted by the password policy.
const SpecialCharacters = "!@#$%^&*()_+-=[]{};':\"\\|,./"

const (
	MsgPasswordLength    = "must be between 7 and 12 characters"
	MsgPasswordLowercase = "must contain at least one lowercase letter"
	MsgPasswordUppercase = "must contain at least one uppercase letter"
	MsgPasswordDigit     = "must contain at least one digit"
	MsgPasswordSpecial   = "must contain at least one special character (!@#$%&)"
)

// ValidatePassword evaluates every password rule independently and returns
// the violated ones in order. An empty slice means the password is acceptable.
func ValidatePassword(password string) []string {
	var violations []string

	if n := len([]rune(password)); n < 7 || n > 12 {
		violations = append(violations, MsgPasswordLength)
	}
	if !containsRange(password, 'a', 'z') {
		violations = append(violations, MsgPasswordLowercase)
	}
	if !containsRange(password, 'A', 'Z') {
		violations = append(violations, MsgPasswordUppercase)
	}
	if !containsRange(password, '0', '9') {
		violations = append(violations, MsgPasswordDigit)
	}
	if !strings.ContainsAny(password, SpecialCharacters) {
		violations = append(violations, MsgPasswordSpecial)
	}

	return violations
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
