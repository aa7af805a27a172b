// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Advice represents a user-submitted piece of advice.
//
// The same struct is used by both storage backends: the SQLite repository
// scans columns into it by hand, while the Postgres repository lets GORM map
// it through the `gorm:"..."` struct tags. The `json:"..."` tags define the
// wire format and must stay stable — the frontend reads exactly these names.
//
// WHY int64 FOR IDs?
// Both SQLite INTEGER PRIMARY KEY and Postgres BIGSERIAL are 64-bit, so int64
// never truncates a store-assigned id.
type Advice struct {
	ID        int64     `json:"id"        gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	Likes     int       `json:"likes"     gorm:"not null;default:0"`
	UserID    int64     `json:"userId"    gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName pins the GORM table name to "advice" (GORM would pluralise it).
func (Advice) TableName() string { return "advice" }
