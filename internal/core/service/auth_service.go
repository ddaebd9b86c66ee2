package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
	"github.com/sweetshop/inventory-system/internal/core/token"
)

// RevocationList abstracts the token denylist (Redis).
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuditSink accepts audit events for asynchronous processing.
type AuditSink interface {
	Enqueue(event ports.AuditEventInput)
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo        ports.UserRepository
	issuer      *token.Issuer
	revocations RevocationList
	sink        AuditSink
	logger      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, revocations RevocationList, sink AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, revocations: revocations, sink: sink, logger: logger}
}

// Register creates a new account with role USER. The email is the unique
// natural key; a second registration with the same email fails with
// domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("user registered")
	s.audit(domain.AuditRegister, email, created.ID)
	return created, nil
}

// Login authenticates the credentials and returns a signed access token.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.audit(domain.AuditLoginFailed, email, "")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.audit(domain.AuditLoginFailed, email, user.ID)
		return "", domain.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.Issue(user)
	if err != nil {
		return "", err
	}

	s.audit(domain.AuditLoginOK, email, user.ID)
	return accessToken, nil
}

// Logout places the token on the revocation list until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, accountID, tokenID string, expiresAt time.Time) error {
	if ttl := time.Until(expiresAt); tokenID != "" && ttl > 0 {
		if err := s.revocations.Revoke(ctx, tokenID, ttl); err != nil {
			return err
		}
	}

	s.audit(domain.AuditLogout, "", accountID)
	return nil
}

func (s *AuthService) audit(action, subject, accountID string) {
	if s.sink == nil {
		return
	}
	s.sink.Enqueue(ports.AuditEventInput{
		Action:    action,
		Subject:   subject,
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
	})
}
