package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/pkg/jwt"
	"github.com/triomphant75/Gestion-Absence/pkg/redis"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

const (
	ctxUserID        = "user_id"
	ctxRole          = "role"
	ctxFormationID   = "formation_id"
	ctxDepartementID = "departement_id"
	ctxClaims        = "claims"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>, rejects revoked tokens through the Redis
// blacklist (nil client degrades to no blacklist check) and injects the
// identity into the request context.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxFormationID, claims.FormationID)
		c.Set(ctxDepartementID, claims.DepartementID)
		c.Set(ctxClaims, claims)

		c.Next()
	}
}

// RoleAuth allows the request through only when the caller holds one of
// the listed roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient role")
		c.Abort()
	}
}
