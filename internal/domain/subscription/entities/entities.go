package entities

import (
	"time"

	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

// ChannelType classifies a channel's role
type ChannelType string

const (
	ChannelTypeMain      ChannelType = "main"
	ChannelTypeMandatory ChannelType = "mandatory"
	ChannelTypeGroup     ChannelType = "group"
)

// Channel represents a Telegram channel the bot works with. Mandatory
// channels feed the subscription gate.
type Channel struct {
	ID         uint        `gorm:"primaryKey"`
	ChannelID  int64       `gorm:"column:channel_id;not null;uniqueIndex"`
	Type       ChannelType `gorm:"column:channel_type;size:50;not null"`
	Title      string      `gorm:"size:500"`
	Username   string      `gorm:"size:255"`
	InviteLink string      `gorm:"size:500"`
	IsActive   bool        `gorm:"not null;default:true"`
	AddedAt    time.Time   `gorm:"column:added_at;autoCreateTime"`
}

func (Channel) TableName() string {
	return "channels"
}

// Subscription links a user to a channel (many-to-many join), cascade
// deleted with either parent.
type Subscription struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index:idx_user_channel,unique"`
	ChannelID    uint      `gorm:"not null;index:idx_user_channel,unique"`
	SubscribedAt time.Time `gorm:"autoCreateTime"`

	// declared so AutoMigrate creates the same cascading foreign keys
	// the SQL migrations do; never preloaded
	User    *userentities.User `gorm:"constraint:OnDelete:CASCADE"`
	Channel *Channel           `gorm:"constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
