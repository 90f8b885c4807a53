package models

// Category groups posts under a named, uniquely-slugged topic.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	// PostCount is not persisted; computed at query time
	PostCount int64 `gorm:"->" json:"post_count"`
}
