// Package middleware contains the gin middleware the gateway mounts around
// the v1 routes: authentication, access logging and request metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/jack0rich/BigdataServer/internal/api/rest/v1"
	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// Context keys set by the auth middlewares.
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// Error codes returned by the auth middlewares.
const (
	CodeMissingAPIKey = "MISSING_API_KEY"
	CodeInvalidAPIKey = "INVALID_API_KEY"
	CodeMissingToken  = "MISSING_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
)

// NewAPIKeyAuth guards relay routes with the configured API-key header.
// Missing key yields 401, unknown key 403.
func NewAPIKeyAuth(userService users.UserService, header string, logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		apiKey := ctx.GetHeader(header)
		if apiKey == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{
				Code:    CodeMissingAPIKey,
				Message: "api key header " + header + " is required",
			})
			return
		}

		user, err := userService.VerifyAPIKey(ctx, apiKey)
		if err != nil {
			logger.Warn("Rejected api key on ", ctx.Request.Method, " ", ctx.Request.URL.Path)
			ctx.AbortWithStatusJSON(http.StatusForbidden, v1.ErrorResponse{
				Code:    CodeInvalidAPIKey,
				Message: "invalid api key",
			})
			return
		}

		ctx.Set(ContextUserIDKey, user.ID)
		ctx.Set(ContextUsernameKey, user.Username)
		ctx.Next()
	}
}

// NewBearerAuth guards user-management routes with a signed session token.
func NewBearerAuth(tokens users.TokenIssuer, logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{
				Code:    CodeMissingToken,
				Message: "bearer token is required",
			})
			return
		}

		session, err := tokens.Verify(token)
		if err != nil {
			logger.Warn("Rejected session token on ", ctx.Request.Method, " ", ctx.Request.URL.Path)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{
				Code:    CodeInvalidToken,
				Message: "invalid or expired token",
			})
			return
		}

		ctx.Set(ContextUserIDKey, session.UserID)
		ctx.Set(ContextUsernameKey, session.Username)
		ctx.Next()
	}
}
