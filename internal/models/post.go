package models

import (
	"time"
)

// Post status values. A post is only publicly readable while Published.
const (
	PostStatusDraft     = "Draft"
	PostStatusPublished = "Published"
	PostStatusArchived  = "Archived"
)

// ValidPostStatus reports whether s is a known status value.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// Post is an article owned by a single author. Slugs are unique across all
// posts; the generator probes for collisions before insert.
type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title      string     `gorm:"size:100;not null" json:"title"`
	Image      string     `gorm:"size:500" json:"image"`
	Preview    string     `gorm:"size:200" json:"preview"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Tags       string     `gorm:"size:100" json:"tags"`
	CategoryID *uint      `gorm:"index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Status     string     `gorm:"size:20;not null;default:Draft;index" json:"status"`
	Views      int64      `gorm:"not null;default:0" json:"views"`
	Slug       string     `gorm:"uniqueIndex;size:140;not null" json:"slug"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// LikesCount and BookmarksCount are not persisted; computed at query time
	LikesCount     int64     `gorm:"->" json:"likes_count"`
	BookmarksCount int64     `gorm:"->" json:"bookmarks_count"`
	CommentsCount  int64     `gorm:"->" json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Popularity is the ranking score used by the popular-posts listing.
// It is never stored; listings compute the same expression in SQL.
func (p *Post) Popularity() float64 {
	return 0.5*float64(p.LikesCount) + 0.3*float64(p.Views) + 0.2*float64(p.BookmarksCount)
}

// Like marks that a user liked a post. The (user, post) pair is unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorStats aggregates engagement across all of an author's posts.
type AuthorStats struct {
	Views     int64 `json:"views"`
	Posts     int64 `json:"posts"`
	Likes     int64 `json:"likes"`
	Bookmarks int64 `json:"bookmarks"`
}
