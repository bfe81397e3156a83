package entities

import "time"

// Broadcast is the audit record of one mass-send run
type Broadcast struct {
	ID               uint       `gorm:"primaryKey"`
	PayloadChatID    int64      `gorm:"not null"`
	PayloadMessageID int        `gorm:"not null"`
	SentCount        int        `gorm:"not null;default:0"`
	FailedCount      int        `gorm:"not null;default:0"`
	TotalCount       int        `gorm:"not null;default:0"`
	CreatedBy        int64      `gorm:"not null"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	CompletedAt      *time.Time `gorm:""`
}

func (Broadcast) TableName() string {
	return "broadcasts"
}

// Payload references the admin's original message; delivery copies it to
// each recipient.
type Payload struct {
	FromChatID int64
	MessageID  int
}

// Result summarizes one finished run
type Result struct {
	Sent   int
	Failed int
	Total  int
}
