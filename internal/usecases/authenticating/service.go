package authenticating

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
)

const (
	tokenIssuer     = "dashboard-analitico-de-vendas"
	defaultTokenTTL = 24 * time.Hour
)

type Authenticator interface {
	// Enabled indica se a API exige token
	Enabled() bool
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o administrador configurado por variáveis de ambiente
type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.Enabled()
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if !s.Enabled() {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrInvalidRequest, "Defina AUTH_SECRET para habilitar o login")
	}

	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if handleEmail(email) != handleEmail(s.cfg.Auth.AdminEmail) || s.cfg.Auth.AdminPasswordHash == "" {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(password)); err != nil {
		logrus.WithField("user_email", handleEmail(email)).Warn("Tentativa de login com senha incorreta")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
	}

	// Gerar token JWT
	token, err := s.generateJWT(handleEmail(email), domain.RoleAdmin)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
}

func (s *Service) generateJWT(email string, roleID int) (string, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := &domain.Claims{
		UserEmail:  email,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func handleEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
