package auth

// RegisterRequest captures the payload required to create an account.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	Nickname  string  `json:"nickname" validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// RegisterResponse is the subset of the new user returned on success.
type RegisterResponse struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
}

// LoginRequest carries the credentials sent to the login endpoint. The
// identifier matches either the email or the nickname.
type LoginRequest struct {
	LoginIdentifier string `json:"loginIdentifier" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// LoginResponse contains the bearer token and the welcome message.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
