package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "dealroom/database/repository/user"
	"dealroom/models"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const userContextKey = "user"

// CurrentUser returns the authenticated user set by JWTAuthMiddleware,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return u
}

// JWTAuthMiddleware authenticates the bearer token against the auth cache,
// falling back to the user store on a cache miss. Authentication absence is
// resolved as a login redirect in the response body, never as a panic.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthenticated(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthenticated(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthenticated(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					unauthenticated(c)
					return
				}
				// Refresh TTL on a hit; the user record still has to be
				// loaded for role and deal-access checks downstream.
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			} else if err != redis.Nil {
				logger.Warn("auth cache lookup failed, falling back to store", zap.Error(err))
				cacheEnabled = false
			} else {
				cacheEnabled = false
			}
		}

		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			unauthenticated(c)
			return
		}

		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			unauthenticated(c)
			return
		}

		if !cacheEnabled && authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set(userContextKey, usr)
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Insufficient authorization",
		"redirect": "/login",
	})
}
