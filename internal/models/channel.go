package models

import (
	"strings"
	"time"
)

// Channel represents a TV channel in the catalog
type Channel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Categoria   string    `gorm:"size:50;index" json:"categoria"`
	URL         string    `gorm:"size:255" json:"url"`
	Image       string    `gorm:"size:255" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Channel model
func (Channel) TableName() string {
	return "tv_channels"
}

// ChannelDescription derives the default description for a channel name:
// lowercase with spaces replaced by hyphens. A caller-supplied description
// always wins over the derived one.
func ChannelDescription(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
