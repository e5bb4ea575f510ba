package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/policy"
)

// ValidateToken authenticates the bearer token and stores the caller's
// identity and admin flag in the request context.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			apierror.Abort(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Authorization header is missing")
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			apierror.Abort(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			apierror.Abort(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Invalid token claims")
			return
		}

		// JSON numbers decode as float64.
		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			apierror.Abort(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Invalid token claims")
			return
		}
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set("user_id", uint(userID))
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

// Caller reconstructs the authenticated caller set by ValidateToken.
func Caller(c *gin.Context) policy.Caller {
	userID, _ := c.Get("user_id")
	isAdmin, _ := c.Get("is_admin")

	caller := policy.Caller{}
	if id, ok := userID.(uint); ok {
		caller.UserID = id
	}
	if admin, ok := isAdmin.(bool); ok {
		caller.Admin = admin
	}
	return caller
}

// RequireAdmin gates administrator-only routes. Must run after
// ValidateToken.
func RequireAdmin(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Can(Caller(c), action, policy.Resource{}) {
			apierror.Abort(c, http.StatusForbidden, apierror.KindForbidden, "Administrator access required")
			return
		}
		c.Next()
	}
}
