// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocAdminUsername holds the verified admin name for the rest of the request.
const LocAdminUsername = "admin_username"

// GetRawAccessToken returns the admin token from:
// 1) Authorization header "Bearer <token>" (scheme case-insensitive)
// 2) query "?token=" (used by the admin page for logout/verify)
func GetRawAccessToken(c *fiber.Ctx) string {
	if fields := strings.Fields(c.Get(fiber.HeaderAuthorization)); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		if tok := strings.Trim(fields[1], "\"'"); tok != "" {
			return tok
		}
	}
	return strings.TrimSpace(c.Query("token"))
}
