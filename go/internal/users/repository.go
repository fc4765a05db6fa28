package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/users/db"
)

// Repository implements scout and invite data access on a pgx pool
type Repository struct {
	pool    *pgxpool.Pool
	queries *db.Queries
}

// NewRepository creates a new users repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool:    pool,
		queries: db.New(pool),
	}
}

// GetScoutByEmail returns nil, nil when no scout has that email
func (r *Repository) GetScoutByEmail(ctx context.Context, email string) (*models.Scout, error) {
	scout, err := r.queries.GetScoutByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scout by email: %w", err)
	}
	return dbScoutToModel(scout), nil
}

// GetInviteByEmail returns nil, nil when there is no invite for email
func (r *Repository) GetInviteByEmail(ctx context.Context, email string) (*models.Invite, error) {
	inv, err := r.queries.GetInviteByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invite by email: %w", err)
	}
	return dbInviteToModel(inv), nil
}

// GetInviteByToken returns nil, nil for an unknown token
func (r *Repository) GetInviteByToken(ctx context.Context, token string) (*models.Invite, error) {
	inv, err := r.queries.GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invite by token: %w", err)
	}
	return dbInviteToModel(inv), nil
}

func (r *Repository) ListInvites(ctx context.Context) ([]models.Invite, error) {
	rows, err := r.queries.ListInvites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	invites := make([]models.Invite, 0, len(rows))
	for _, row := range rows {
		invites = append(invites, *dbInviteToModel(row))
	}
	return invites, nil
}

// CreateInvite inserts inv, deleting the invite replaced (if any) in the
// same transaction
func (r *Repository) CreateInvite(ctx context.Context, inv *models.Invite, replaces *uuid.UUID) (*models.Invite, error) {
	var created db.Invite
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := r.queries.WithTx(tx)
		if replaces != nil {
			if err := q.DeleteInvite(ctx, *replaces); err != nil {
				return err
			}
		}

		var err error
		created, err = q.CreateInvite(ctx, db.CreateInviteParams{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      string(inv.Role),
			Token:     inv.Token,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return dbInviteToModel(created), nil
}

// RegisterScout creates scout and consumes the invite atomically. An invite
// consumed concurrently yields ErrInvalidInvite.
func (r *Repository) RegisterScout(ctx context.Context, scout *models.Scout, inviteID uuid.UUID) (*models.Scout, error) {
	var created db.Scout
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := r.queries.WithTx(tx)

		n, err := q.MarkInviteUsed(ctx, inviteID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrInvalidInvite
		}

		created, err = q.CreateScout(ctx, db.CreateScoutParams{
			ID:        scout.ID,
			Email:     scout.Email,
			Password:  scout.PasswordHash,
			Name:      scout.Name,
			Role:      string(scout.Role),
			CreatedAt: scout.CreatedAt,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInvite) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register scout: %w", err)
	}
	return dbScoutToModel(created), nil
}

func dbScoutToModel(s db.Scout) *models.Scout {
	return &models.Scout{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		Role:         models.ScoutRole(s.Role),
		PasswordHash: s.Password,
		CreatedAt:    s.CreatedAt,
	}
}

func dbInviteToModel(i db.Invite) *models.Invite {
	return &models.Invite{
		ID:        i.ID,
		Email:     i.Email,
		Role:      models.ScoutRole(i.Role),
		Token:     i.Token,
		Used:      i.Used,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}
