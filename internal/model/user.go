// Package model defines the data structures used throughout the application.
package model

import "time"

// User is the owner referenced by advice and confession rows.
//
// There is no login in this application, so the only user that normally
// exists is the placeholder account seeded by the migrations (see
// DefaultUsername). Posts submitted without a userId are attributed to it.
type User struct {
	ID        int64     `json:"id"        gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username"  gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// DefaultUsername is the username of the seeded placeholder user (id 1).
const DefaultUsername = "anonymous"
