package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// TokenHeader is the request header carrying the access token.
const TokenHeader = "x-access-token"

const principalKey = "auth_principal"

// Principal is the identity carried by a verified token.
type Principal struct {
	EmployeeID string
	Role       string
}

// AuthMiddleware validates access tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication. Every verification failure (missing,
// malformed, expired, bad signature) yields the same unauthorized outcome.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Get(TokenHeader)
	if token == "" {
		return apperrors.NewUnauthorized("token is missing")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("token is invalid")
	}

	c.Locals(principalKey, &Principal{EmployeeID: claims.EmployeeID, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
