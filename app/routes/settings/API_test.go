package settings

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestUpdateAmountAPIRejectsBadInput(t *testing.T) {
	app := fiber.New()
	app.Put("/api/settings/amount", func(c *fiber.Ctx) error { return UpdateAmountAPI(c, nil) })

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{"},
		{"negative value", `{"value":-5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/settings/amount", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
