package model

import "time"

// Confession is an anonymous post that other users can like.
// Likes only ever grow, one at a time.
type Confession struct {
	ID        int64     `json:"id"        gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	Likes     int       `json:"likes"     gorm:"not null;default:0"`
	UserID    int64     `json:"userId"    gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (Confession) TableName() string { return "confession" }
