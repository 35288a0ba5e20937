package middleware

import (
	"net/http"
	"strings"

	"docutext/pdf-api/model"
	"docutext/pdf-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Single message for every auth failure. Whether the token was malformed,
// expired, signed with the wrong key or points at a user that no longer
// exists must not be visible from the outside
const credentialsError = "Could not validate credentials"

// NewJWTMiddleware returns the auth guard. It extracts the bearer token from
// the Authorization header, verifies it and resolves the subject to a user
// record, which is stored under the user context key.
//
// The active flag is deliberately not re-checked here: a token issued before
// an account was deactivated keeps working until it expires
func NewJWTMiddleware(d *gorm.DB, tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     credentialsError,
				"requestID": requestID,
			})
			return
		}

		username, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     credentialsError,
				"requestID": requestID,
			})

			zap.L().Debug("Token verification failed", zap.String("requestID", requestID))
			return
		}

		var user model.User
		err = d.Where("username = ?", username).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     credentialsError,
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token subject", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("user", user)
		c.Set("username", user.Username)
		c.Next()
	}
}
