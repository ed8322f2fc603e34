package models

import "time"

// Like links a user to a channel they liked. At most one row per
// (user_id, tv_channel_id) pair; the unique index backs up the
// application-level check so racing inserts cannot duplicate the pair.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_likes_user_channel;not null" json:"user_id"`
	ChannelID uint      `gorm:"column:tv_channel_id;uniqueIndex:idx_likes_user_channel;not null" json:"tv_channel_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Like model
func (Like) TableName() string {
	return "likes"
}

// Favorite links a user to a channel they favorited. Same pair uniqueness
// rules as Like.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorites_user_channel;not null" json:"user_id"`
	ChannelID uint      `gorm:"column:tv_channel_id;uniqueIndex:idx_favorites_user_channel;not null" json:"tv_channel_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
