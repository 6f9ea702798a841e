package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/nutriapp/nutriapp-backend/pkg/auth"
	"github.com/nutriapp/nutriapp-backend/pkg/config"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "nutriapp", ExpirationHours: 24}
}

func mintTestToken(t *testing.T, issuedAt time.Time) string {
	t.Helper()
	token, err := pkgAuth.MintToken(testJWTConfig(), issuedAt, pkgAuth.TokenPayload{
		UserID:   7,
		Email:    "ana@example.com",
		Nickname: "anita",
	})
	require.NoError(t, err)
	return token
}

func protectedHandler(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		claims := ClaimsFromContext(r.Context())
		require.NotNil(t, claims)
		require.Equal(t, int64(7), claims.UserID)
		require.Equal(t, int64(7), UserIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	called := false
	handler := protectedHandler(t, &called)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, time.Now().UTC()))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	require.True(t, called)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejections(t *testing.T) {
	valid := mintTestToken(t, time.Now().UTC())
	expired := mintTestToken(t, time.Now().UTC().Add(-25*time.Hour))
	tampered := valid[:len(valid)-2] + "xx"

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"empty bearer", "Bearer "},
		{"literal null", "Bearer null"},
		{"malformed", "Bearer not.a.jwt"},
		{"tampered signature", "Bearer " + tampered},
		{"expired", "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := protectedHandler(t, &called)

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			require.False(t, called)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
