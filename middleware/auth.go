package middleware

import (
	"net/http"
	"strings"
	"time"

	"Bazaar/models"
	"Bazaar/pkg/context"
	"Bazaar/pkg/jwt"
	"Bazaar/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		// 快过期就顺手续一个，前端从响应头换新
		if jwt.ShouldRotate(claims, 5*time.Minute) {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Role, "access", time.Hour)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, models.Role(claims.Role))

		c.Next()
	}
}

// RequireVendor 商品管理入口：vendor 和 admin 放行
func RequireVendor() gin.HandlerFunc {
	return requireRole(func(r models.Role) bool { return r.CanManageProducts() })
}

// RequireAdmin 审核、订单状态等后台入口：仅 admin
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(r models.Role) bool { return r.CanModerate() })
}

func requireRole(allowed func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := context.GetRole(c)
		if !role.Valid() || !allowed(role) {
			response.Abort(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}
