package models

import "time"

// Session binds an opaque cookie token to a member id. The token carries no
// other claims; everything else is resolved from the database per request.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	MemberID  uint      `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}
