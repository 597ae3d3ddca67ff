package middleware

import (
	"context"
	"net/http"
	"strings"

	adminRepo "expertbook/database/repository/admin"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AdminIDKey is the gin context key under which the authenticated admin's ID
// is stored.
const AdminIDKey = "adminID"

// JWTAuthAdminMiddleware gates privileged endpoints behind a bearer token.
// The token signature and expiry are verified first; the cached token hash
// in Redis is then checked so revoked tokens are refused early. A healthy
// cache is authoritative: a missing or mismatched hash means the token was
// revoked. Only when the cache is unavailable (nil client or a lookup error)
// does the middleware fall back to verifying that the admin still exists.
func JWTAuthAdminMiddleware(secret []byte, cache *redis.Client, repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(secret, tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if cache != nil {
			cachedHash, err := cache.Get(context.Background(), utils.AuthCachePrefix+adminID).Result()
			switch {
			case err == nil:
				if cachedHash != utils.HashToken(tokenString) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
					return
				}
				c.Set(AdminIDKey, adminID)
				c.Next()
				return
			case err == redis.Nil:
				// The hash was deleted (logout) or expired with the token.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			default:
				zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		oid, err := primitive.ObjectIDFromHex(adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		admin, err := repo.GetByID(oid)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}
