package model

import "time"

// Quote is the rotating inspirational line shown on every page. Display-only:
// nothing in the scoring pipeline reads it.
type Quote struct {
	BaseModel
	Content         string    `gorm:"type:text;not null" json:"content"`
	Author          string    `gorm:"size:100" json:"author"`
	IsEnabled       bool      `gorm:"default:true" json:"isEnabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"isCurrentlyUsed"`
	LastUsedAt      time.Time `gorm:"autoCreateTime" json:"lastUsedAt"`
}

func (Quote) TableName() string {
	return "quotes"
}
