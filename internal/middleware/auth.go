package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/account"
)

const (
	// ContextUser holds the authenticated *model.User.
	ContextUser = "current_user"
	// ContextToken holds the raw session token.
	ContextToken = "session_token"
)

type AuthMiddleware struct {
	accounts *account.Service
}

func NewAuthMiddleware(accounts *account.Service) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Authenticate resolves the Bearer token to an active session and puts
// the user on the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		user, err := m.accounts.CurrentUser(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "no active session",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireRole gates a route group to one user variant.
func (m *AuthMiddleware) RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "insufficient permissions",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context, or nil.
func CurrentUser(c *gin.Context) *model.User {
	raw, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := raw.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
