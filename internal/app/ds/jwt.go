package ds

import (
	"backoffice/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserPID uuid.UUID `json:"user_pid"`
	Role    role.Role `json:"role"`
}
