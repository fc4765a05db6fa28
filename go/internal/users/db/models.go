package db

import (
	"time"

	"github.com/google/uuid"
)

type Scout struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Name      string
	Role      string
	CreatedAt time.Time
}

type Invite struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Token     string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
