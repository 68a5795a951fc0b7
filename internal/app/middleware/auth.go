package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"backoffice/internal/app/config"
	"backoffice/internal/app/ds"
	"backoffice/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

// Blacklist отозванные (logout) токены
type Blacklist interface {
	IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// BearerToken достаёт токен из заголовка Authorization
func BearerToken(gCtx *gin.Context) string {
	jwtStr := gCtx.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(jwtStr, "Bearer "))
}

// WithAuthCheck middleware для проверки авторизации с ролями.
// Без ролей пропускает любого авторизованного пользователя.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx)
		if jwtStr == "" {
			abort(gCtx, http.StatusUnauthorized, "authorization header missing")
			return
		}

		// Проверяем токен в blacklist Redis
		blacklisted, err := am.Blacklist.IsJWTBlacklisted(gCtx.Request.Context(), jwtStr)
		if err != nil {
			logrus.WithError(err).Error("blacklist check failed")
			abort(gCtx, http.StatusInternalServerError, "token check failed")
			return
		}
		if blacklisted {
			abort(gCtx, http.StatusUnauthorized, "token revoked")
			return
		}

		claims, err := am.ParseToken(jwtStr)
		if err != nil {
			abort(gCtx, http.StatusUnauthorized, "invalid token")
			return
		}

		// Проверяем роли пользователя
		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			abort(gCtx, http.StatusForbidden, "insufficient role")
			return
		}

		setCurrentUser(gCtx, CurrentUser{PID: claims.UserPID, Role: claims.Role})

		gCtx.Next()
	}
}

// ParseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != am.Config.JWT.SigningMethod {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// hasRequiredRole проверяет, есть ли у пользователя необходимая роль
func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}

func abort(gCtx *gin.Context, status int, description string) {
	gCtx.AbortWithStatusJSON(status, gin.H{
		"status":      "error",
		"description": description,
	})
}
