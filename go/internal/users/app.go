package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/bacauscout/scout/go/internal/models"
)

// InviteTTL is how long an invite link stays redeemable
const InviteTTL = 7 * 24 * time.Hour

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	GetScoutByEmail(ctx context.Context, email string) (*models.Scout, error)
	GetInviteByEmail(ctx context.Context, email string) (*models.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*models.Invite, error)
	ListInvites(ctx context.Context) ([]models.Invite, error)
	CreateInvite(ctx context.Context, inv *models.Invite, replaces *uuid.UUID) (*models.Invite, error)
	RegisterScout(ctx context.Context, scout *models.Scout, inviteID uuid.UUID) (*models.Scout, error)
}

// App handles invites and scout registration
type App struct {
	repo     UsersRepository
	clock    clockwork.Clock
	baseURL  string
	hashCost int
}

// NewApp creates a new users App. baseURL prefixes invite links.
func NewApp(repo UsersRepository, clock clockwork.Clock, baseURL string) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:     repo,
		clock:    clock,
		baseURL:  strings.TrimRight(baseURL, "/"),
		hashCost: BcryptCost,
	}
}

// CreateInvite issues a fresh invite for req.Email. A used invite for the same
// email is replaced; an unused one blocks the request.
func (a *App) CreateInvite(ctx context.Context, req CreateInviteRequest) (*CreateInviteResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	role := req.Role
	if role == "" {
		role = models.ScoutRoleScout
	}
	if role != models.ScoutRoleScout && role != models.ScoutRoleAdmin {
		return nil, ErrInvalidRole
	}

	scout, err := a.repo.GetScoutByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if scout != nil {
		return nil, ErrScoutExists
	}

	existing, err := a.repo.GetInviteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	var replaces *uuid.UUID
	if existing != nil {
		if !existing.Used {
			return nil, ErrActiveInvite
		}
		replaces = &existing.ID
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := a.clock.Now().UTC()
	invite, err := a.repo.CreateInvite(ctx, &models.Invite{
		ID:        uuid.New(),
		Email:     email,
		Role:      role,
		Token:     token,
		ExpiresAt: now.Add(InviteTTL),
		CreatedAt: now,
	}, replaces)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Str("role", string(role)).Msg("Invite created")
	return &CreateInviteResponse{
		Invite:     invite,
		InviteLink: a.baseURL + "/register?token=" + url.QueryEscape(token),
	}, nil
}

// ListInvites returns every invite, newest first
func (a *App) ListInvites(ctx context.Context) ([]models.Invite, error) {
	return a.repo.ListInvites(ctx)
}

// ValidateInvite never fails on a bad token; it answers Valid=false
func (a *App) ValidateInvite(ctx context.Context, token string) (*InviteValidation, error) {
	if token == "" {
		return &InviteValidation{Valid: false}, nil
	}

	invite, err := a.repo.GetInviteByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invite == nil || !invite.Usable(a.clock.Now()) {
		return &InviteValidation{Valid: false}, nil
	}
	return &InviteValidation{
		Valid: true,
		Email: invite.Email,
		Role:  invite.Role,
	}, nil
}

// Register redeems an invite and creates the scout account
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.Scout, error) {
	if req.Token == "" || strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	invite, err := a.repo.GetInviteByToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if invite == nil || !invite.Usable(a.clock.Now()) {
		return nil, ErrInvalidInvite
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.ToLower(invite.Email) != email {
		return nil, ErrEmailMismatch
	}

	existing, err := a.repo.GetScoutByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	scout, err := a.repo.RegisterScout(ctx, &models.Scout{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Role:         invite.Role,
		PasswordHash: string(hash),
		CreatedAt:    a.clock.Now().UTC(),
	}, invite.ID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Str("role", string(scout.Role)).Msg("Scout registered")
	return scout, nil
}

func newToken() (string, error) {
	b := make([]byte, InviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
