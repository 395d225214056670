package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// Claims é o conteúdo do token JWT emitido no login
type Claims struct {
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

// IsAdmin informa se o token pertence a um administrador
func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}
