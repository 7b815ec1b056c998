package middleware

import (
	"net/http"
	"strings"
	"time"

	"FreshMall/pkg/jwt"
	"FreshMall/pkg/response"

	"github.com/gin-gonic/gin"
)

const accessTokenRotateBuffer = 30 * time.Second

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		// 快过期的 token 顺手续签，前端从响应头换新
		if time.Until(claims.ExpiresAt.Time) < accessTokenRotateBuffer {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				claims.OpenID,
				"access",
				time.Hour,
			)
			c.Header("X-New-Access-Token", newToken)
		}

		c.Set("user_id", claims.UserID)
		c.Set("openid", claims.OpenID)

		c.Next()
	}
}
