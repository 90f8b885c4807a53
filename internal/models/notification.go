package models

import "time"

// Notification types, one per qualifying action.
const (
	NotificationLike     = "Like"
	NotificationComment  = "Comment"
	NotificationBookmark = "Bookmark"
	NotificationFollow   = "Follow"
)

// Notification records that an actor performed an action affecting the
// recipient. Rows are append-only: every qualifying action creates exactly
// one, including actions a user performs on their own content.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	Recipient   *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	ActorID     uint      `gorm:"not null;index" json:"actor_id"`
	Actor       *User     `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	PostID      *uint     `gorm:"index" json:"post_id,omitempty"`
	Post        *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	Seen        bool      `gorm:"not null;default:false" json:"seen"`
	CreatedAt   time.Time `json:"created_at"`
}
