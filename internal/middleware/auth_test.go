package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use(Logging(zap.NewNop()))
	app.Get("/me", Protected(), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c).String())
	})
	return app
}

func TestProtected(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := GenerateToken(userID, "runner@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + token, fiber.StatusOK, userID.String()},
		{"missing header", "", fiber.StatusUnauthorized, ""},
		{"no bearer prefix", token, fiber.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newProtectedApp().Test(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("Expected body %q, got %q", tt.wantBody, string(body))
				}
			}
		})
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := GenerateToken(userID, "runner@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.UserID != userID || claims.Email != "runner@example.com" {
		t.Errorf("Expected claims for %s, got %+v", userID, claims)
	}
}
