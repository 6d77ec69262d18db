package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name          string
		header        func() string
		expectedCode  int
		expectedUser  int
		expectedAdmin bool
	}{
		{
			name:         "Missing header",
			header:       func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed header",
			header:       func() string { return "Token abc" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			header:       func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Valid user token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(3, false, time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
			expectedUser: 3,
		},
		{
			name: "Valid admin token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(1, true, time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode:  http.StatusOK,
			expectedUser:  1,
			expectedAdmin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			var gotAdmin bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(UserIDKey).(int)
				gotAdmin, _ = r.Context().Value(AdminKey).(bool)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/revenue", nil)
			if h := tt.header(); h != "" {
				req.Header.Set("Authorization", h)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedUser, gotUser)
				assert.Equal(t, tt.expectedAdmin, gotAdmin)
			}
		})
	}
}
