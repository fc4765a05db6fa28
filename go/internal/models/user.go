package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoutRole grants access levels inside the app
type ScoutRole string

const (
	ScoutRoleScout ScoutRole = "scout"
	ScoutRoleAdmin ScoutRole = "admin"
)

// Scout represents a registered user of the scouting app
type Scout struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         ScoutRole `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Invite is a single-use registration token sent to a prospective scout
type Invite struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      ScoutRole `json:"role"`
	Token     string    `json:"token"`
	Used      bool      `json:"used"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Usable reports whether the invite can still be redeemed at now
func (i *Invite) Usable(now time.Time) bool {
	return !i.Used && now.Before(i.ExpiresAt)
}
