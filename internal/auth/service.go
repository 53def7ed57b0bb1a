// Package auth is the session gate: it resolves the current identity, admin
// privilege, and the login/register/logout flows over the record store.
//
// There is deliberately no real credential security here. Passwords are
// opaque cleartext strings and the session is a single persisted record;
// the product scopes this client as a local data model only.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/summarize-app/summarize/internal/common"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/security"
	"github.com/summarize-app/summarize/internal/store"
)

// Bootstrap admin account, created idempotently at every start before any
// UI renders.
const (
	BootstrapAdminEmail    = "ahmed@summarize.com"
	bootstrapAdminID       = "admin_001"
	bootstrapAdminName     = "Ahmed (Owner)"
	bootstrapAdminPassword = "2008."
)

// Redirect tells the consumer where to navigate after an auth transition.
type Redirect string

const (
	RedirectHome  Redirect = "home"
	RedirectLogin Redirect = "login"
)

// Service implements the session gate.
type Service struct {
	recs     *store.Records
	limiter  *security.RateLimiter
	validate *validator.Validate
	log      logging.Logger
	now      func() time.Time

	maxAttempts int
	window      time.Duration
}

// NewService wires the gate to the record store. The limiter must be the
// process-wide instance so login throttling is shared with other consumers.
func NewService(recs *store.Records, limiter *security.RateLimiter, log logging.Logger) *Service {
	return &Service{
		recs:        recs,
		limiter:     limiter,
		validate:    validator.New(),
		log:         log,
		now:         time.Now,
		maxAttempts: security.DefaultMaxAttempts,
		window:      security.DefaultWindow,
	}
}

// SetLoginThrottle overrides the default login rate-limit parameters.
func (s *Service) SetLoginThrottle(maxAttempts int, window time.Duration) {
	if maxAttempts > 0 {
		s.maxAttempts = maxAttempts
	}
	if window > 0 {
		s.window = window
	}
}

// InitAdmin appends the bootstrap admin record if no user carries its email.
// Idempotent; an existing record with that email is never overwritten.
func (s *Service) InitAdmin(ctx context.Context) error {
	users := s.recs.Users(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, BootstrapAdminEmail) {
			return nil
		}
	}

	admin := models.User{
		ID:        bootstrapAdminID,
		Name:      bootstrapAdminName,
		Email:     BootstrapAdminEmail,
		Password:  bootstrapAdminPassword,
		Role:      models.RoleAdmin,
		CreatedAt: s.now(),
	}
	return s.recs.SaveUsers(ctx, append(users, admin))
}

// CurrentUser returns the persisted session identity, nil when anonymous.
func (s *Service) CurrentUser(ctx context.Context) *models.User {
	return s.recs.CurrentUser(ctx)
}

// IsAuthenticated reports whether a session identity is present.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.recs.CurrentUser(ctx) != nil
}

// IsAdmin reports admin privilege: the admin role, or the bootstrap admin
// email. The second leg is redundant with a correct registry but kept as a
// belt-and-suspenders check.
func (s *Service) IsAdmin(ctx context.Context) bool {
	u := s.recs.CurrentUser(ctx)
	return u != nil && (u.Role == models.RoleAdmin || strings.EqualFold(u.Email, BootstrapAdminEmail))
}

// Login verifies credentials against the user registry and persists the
// session. Attempts are throttled per email; the caller gets the same
// ErrUnauthorized whether the account or the password was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if !security.ValidateEmail(email) {
		return nil, common.ErrValidation
	}

	key := "login:" + strings.ToLower(email)
	if !s.limiter.Allow(key, s.maxAttempts, s.window) {
		s.log.Warn(ctx, "login throttled", "key", key)
		return nil, common.ErrRateLimited
	}

	for _, u := range s.recs.Users(ctx) {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			if err := s.recs.SetCurrentUser(ctx, &u); err != nil {
				return nil, err
			}
			s.log.Info(ctx, "login", "user", u.ID)
			return &u, nil
		}
	}
	return nil, common.ErrUnauthorized
}

// Logout clears the session and sends the consumer home.
func (s *Service) Logout(ctx context.Context) (Redirect, error) {
	if err := s.recs.ClearCurrentUser(ctx); err != nil {
		return RedirectHome, err
	}
	return RedirectHome, nil
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name            string `validate:"required,min=2,max=100"`
	Email           string `validate:"required,max=254"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Register creates an account and logs it in. Email uniqueness is enforced
// case-insensitively; inputs failing any security check are rejected with a
// generic error and the offending content never leaves the debug log.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, common.ErrValidation
	}

	if security.HasXSSPatterns(req.Name) || security.HasXSSPatterns(req.Email) {
		s.log.Warn(ctx, "unsafe registration input rejected")
		s.log.Debug(ctx, "unsafe registration input", "name", req.Name, "email", req.Email)
		return nil, common.ErrValidation
	}

	name := security.SanitizeInput(req.Name)
	if !security.ValidateUsername(name) || !security.ValidateEmail(req.Email) {
		return nil, common.ErrValidation
	}
	if pw := security.ValidatePassword(req.Password); !pw.Valid {
		return nil, common.ErrValidation
	}

	users := s.recs.Users(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, req.Email) {
			return nil, common.ErrEmailInUse
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleUser,
		CreatedAt: s.now(),
	}

	if err := s.recs.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.recs.SetCurrentUser(ctx, &user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user", user.ID)
	return &user, nil
}

// ProfileUpdate carries the editable profile fields. Empty fields keep their
// stored value; Avatar is a data-URI string.
type ProfileUpdate struct {
	Name   string
	Email  string
	Avatar string
}

// UpdateProfile edits the logged-in user's record and refreshes the session
// copy. Email changes re-check uniqueness against everyone else.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	current := s.recs.CurrentUser(ctx)
	if current == nil {
		return nil, common.ErrUnauthorized
	}

	if upd.Name != "" {
		if security.HasXSSPatterns(upd.Name) {
			s.log.Warn(ctx, "unsafe profile input rejected")
			return nil, common.ErrValidation
		}
		upd.Name = security.SanitizeInput(upd.Name)
		if !security.ValidateUsername(upd.Name) {
			return nil, common.ErrValidation
		}
	}
	if upd.Email != "" && !security.ValidateEmail(upd.Email) {
		return nil, common.ErrValidation
	}

	users := s.recs.Users(ctx)
	if upd.Email != "" {
		for _, u := range users {
			if u.ID != current.ID && strings.EqualFold(u.Email, upd.Email) {
				return nil, common.ErrEmailInUse
			}
		}
	}

	for i := range users {
		if users[i].ID != current.ID {
			continue
		}
		if upd.Name != "" {
			users[i].Name = upd.Name
		}
		if upd.Email != "" {
			users[i].Email = upd.Email
		}
		if upd.Avatar != "" {
			users[i].Avatar = upd.Avatar
		}

		if err := s.recs.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		updated := users[i]
		if err := s.recs.SetCurrentUser(ctx, &updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	return nil, common.ErrNotFound
}
