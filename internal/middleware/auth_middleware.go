package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/auth"
)

// ContextUserKey is the gin context key the authenticated account is
// stored under.
const ContextUserKey = "currentUser"

// AccountResolver resolves a token subject to its stored account
type AccountResolver interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// JWTAuth verifies the bearer token and attaches the resolved account
// to the request context. The subject is re-resolved from the store on
// every request so tokens for deleted accounts stop working.
func JWTAuth(jwtService *auth.JWTService, accounts AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token. Please log in again!"
			if err == auth.ErrExpiredToken {
				message = "Your token has expired! Please log in again."
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, message))
			return
		}

		user, err := accounts.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "The user belonging to this token no longer exists."))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RoleRequired allows the request through only when the authenticated
// account's role is in the allowed set. Must run after JWTAuth.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.NewForbiddenError("You do not have permission to perform this action"))
	}
}

// CurrentUser returns the account attached by JWTAuth, if any
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
