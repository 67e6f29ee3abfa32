package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity for a user account. Email doubles as the login
// and as the key todos are shared by.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
