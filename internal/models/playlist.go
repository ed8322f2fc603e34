package models

import "time"

// Playlist is a named, per-user collection of channels. Names are unique
// per owner, not globally.
type Playlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_playlists_user_name;not null" json:"user_id"`
	Name      string    `gorm:"uniqueIndex:idx_playlists_user_name;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Playlist model
func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistItem links a channel into a playlist. At most one row per
// (playlist_id, tv_channel_id) pair.
type PlaylistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PlaylistID uint      `gorm:"uniqueIndex:idx_playlist_items_pair;not null" json:"playlist_id"`
	ChannelID  uint      `gorm:"column:tv_channel_id;uniqueIndex:idx_playlist_items_pair;not null" json:"tv_channel_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for PlaylistItem model
func (PlaylistItem) TableName() string {
	return "playlist_items"
}
