package model

import (
	"fmt"
	"time"
)

// Author is a persisted blog author.
// Name is unique across all authors; PhoneNumber is optional.
type Author struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	PhoneNumber *string    `json:"phone_number" db:"phone_number"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"` // NULL until the first update
}

// IsPersisted reports whether the author has been assigned an identity
func (a *Author) IsPersisted() bool {
	return a.ID != 0
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}
