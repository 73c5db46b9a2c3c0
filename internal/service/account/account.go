package account

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zeromade/storefront/internal/events"
	"github.com/zeromade/storefront/internal/hash"
	"github.com/zeromade/storefront/internal/logging"
	"github.com/zeromade/storefront/internal/models"
	"github.com/zeromade/storefront/internal/service"
	"github.com/zeromade/storefront/internal/store"
	"github.com/zeromade/storefront/internal/tokens"
)

type Service struct {
	Store    store.Store
	Tokens   *tokens.Service
	Producer *events.Producer
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is what both register and login hand back: a signed session
// token plus the public user fields.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (in RegisterInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", service.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email", service.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", service.ErrValidation)
	}
	return nil
}

// Register creates a user and returns a session. Email uniqueness is
// case-insensitive. The first user ever, or any email containing "admin",
// gets the admin role; this is a demo shortcut carried over from the
// original deployment, not a security mechanism.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "account.register")

	if err := in.validate(); err != nil {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           "user_" + uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.Update(ctx, func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if strings.EqualFold(u.Email, in.Email) {
				return fmt.Errorf("%w: email already registered", service.ErrConflict)
			}
		}
		user.Role = models.RoleCustomer
		if len(snap.Users) == 0 || strings.Contains(in.Email, "admin") {
			user.Role = models.RoleAdmin
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"role":   user.Role,
	}
	if err := s.Producer.Publish(pubCtx, events.TopicUserEvents, user.ID, event); err != nil {
		l.Error("event_publish_failed", "user_id", user.ID, "error", err)
	}

	l.Info("user_registered", "user_id", user.ID, "role", user.Role)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login verifies credentials against the stored hash. The same error comes
// back for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "account.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", service.ErrValidation)
	}

	snap, err := s.Store.Read(ctx)
	if err != nil {
		return nil, err
	}

	var user *models.User
	for i := range snap.Users {
		if strings.EqualFold(snap.Users[i].Email, email) {
			user = &snap.Users[i]
			break
		}
	}
	if user == nil || !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "email", email)
		return nil, fmt.Errorf("%w: invalid email or password", service.ErrUnauthorized)
	}

	token, err := s.Tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Authenticate validates a bearer token and yields the embedded identity.
func (s *Service) Authenticate(token string) (*tokens.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", service.ErrUnauthorized)
	}
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUnauthorized, err)
	}
	return claims, nil
}

// Authorize checks the identity against a required role.
func Authorize(claims *tokens.Claims, requiredRole string) error {
	if claims == nil || claims.Role != requiredRole {
		return fmt.Errorf("%w: %s access required", service.ErrForbidden, requiredRole)
	}
	return nil
}
