package model

import (
	"fmt"
	"time"
)

// Post is a persisted blog post
type Post struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Summary   *string    `json:"summary" db:"summary"`
	Category  string     `json:"category" db:"category"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"` // NULL until the first update
}

func (p Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s, category=%s)", p.ID, p.Title, p.Category)
}
