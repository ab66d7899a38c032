package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
	"github.com/KiwiRant/Kitchen-database/internal/credential"
)

// defaultTokenTTL matches the session lifetime the frontend expects.
const defaultTokenTTL = 2 * time.Hour

// AuthService implements login and account creation.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the identifier/password pair and returns a signed session
// token. An unknown identifier is reported as not-found, distinct from a
// wrong password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return "", nil, err
	}

	if !credential.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("identifier", user.Identifier).Msg("rejected login")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("identifier", user.Identifier).Str("role", user.Role).Msg("login")
	return token, user, nil
}

// CreateUser registers an account. The password is hashed before it leaves
// this method; the repository decides which live columns receive the values.
func (s *AuthService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, &domain.MissingValueError{Column: "identifier and password"}
	}

	role := input.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	created, err := s.repo.Create(ctx, ports.CreateUserParams{
		Identifier:   input.Identifier,
		PasswordHash: credential.Hash(input.Password),
		Name:         input.Name,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("identifier", created.Identifier).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"identifier": user.Identifier,
		"role":       user.Role,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
