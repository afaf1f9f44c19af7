package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(email string) (string, *domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	Profile(claims *domain.Claims) *domain.User
}

type Service struct {
	secret        string
	allowedDomain string
	masterEmails  map[string]struct{}
	tokenTTL      time.Duration
	now           func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	masters := make(map[string]struct{}, len(cfg.MasterEmails))
	for _, email := range cfg.MasterEmails {
		if normalized := handleEmail(email); normalized != "" {
			masters[normalized] = struct{}{}
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secret:        cfg.Secret,
		allowedDomain: strings.ToLower(strings.TrimSpace(cfg.AllowedDomain)),
		masterEmails:  masters,
		tokenTTL:      ttl,
		now:           time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login aceita apenas e-mails do domínio configurado; e-mails master recebem o papel master
func (s *Service) Login(email string) (string, *domain.User, error) {
	email = handleEmail(email)
	if email == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "E-mail é obrigatório")
	}

	if s.allowedDomain != "" && !strings.HasSuffix(email, s.allowedDomain) {
		logrus.WithField("email", email).Warn("Tentativa de login com domínio não permitido")
		return "", nil, NewUserAuthError(ErrEmailDomainNotAllowed, apiErrors.ErrEmailDomainNotAllowed, email, "Acesso restrito a e-mails "+s.allowedDomain)
	}

	user := &domain.User{
		Email:    email,
		RoleID:   domain.RoleViewer,
		LoggedAt: s.now(),
	}
	if _, ok := s.masterEmails[email]; ok {
		user.RoleID = domain.RoleMaster
		user.IsMaster = true
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, NewUserAuthError(ErrGenerateToken, apiErrors.ErrInternalServer, email, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"email":     email,
		"is_master": user.IsMaster,
	}).Info("Login realizado")

	return token, user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := &domain.Claims{
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(user.LoggedAt),
			ExpiresAt: jwt.NewNumericDate(user.LoggedAt.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

func (s *Service) Profile(claims *domain.Claims) *domain.User {
	if claims == nil {
		return nil
	}

	user := &domain.User{
		Email:    claims.UserEmail,
		RoleID:   claims.UserRoleID,
		IsMaster: claims.IsMaster(),
	}
	if claims.IssuedAt != nil {
		user.LoggedAt = claims.IssuedAt.Time
	}

	return user
}
