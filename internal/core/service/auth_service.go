package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	identity  ports.IdentityStore
	events    EventEmitter
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(identity ports.IdentityStore, events EventEmitter, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{identity: identity, events: events, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates the account with login enabled and emits the
// account.created event. The role claim and the profile document are
// written by the synchronizer reacting to that event, which is how every
// new account ends up a viewer regardless of who registered it.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		DisplayName:  in.DisplayName,
		Email:        in.Email,
		AvatarURL:    in.AvatarURL,
		PasswordHash: string(hash),
		LoginEnabled: true,
	}

	created, err := s.identity.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.events.Enqueue(ports.AccountEvent{
		Type:        ports.AccountCreated,
		ID:          created.ID,
		DisplayName: created.DisplayName,
		Email:       created.Email,
		AvatarURL:   created.AvatarURL,
	})

	return created, nil
}

// Login verifies credentials and returns a signed token. Accounts with
// login disabled are rejected before the password is checked.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !account.LoginEnabled {
		return "", nil, domain.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"uid":  account.ID,
		"role": account.Role(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
