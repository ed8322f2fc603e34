package repository

import (
	"errors"

	"github.com/tvhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrPlaylistItemNotFound = errors.New("playlist item not found")
)

// PlaylistRepository handles playlist and playlist item data access
type PlaylistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new PlaylistRepository
func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create creates a new playlist
func (r *PlaylistRepository) Create(playlist *models.Playlist) error {
	return r.db.Create(playlist).Error
}

// GetByID retrieves a playlist by ID
func (r *PlaylistRepository) GetByID(id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	result := r.db.First(&playlist, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, result.Error
	}
	return &playlist, nil
}

// ListByUser retrieves all playlists owned by a user
func (r *PlaylistRepository) ListByUser(userID uint) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := r.db.Where("user_id = ?", userID).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// ExistsByUserAndName checks whether the owner already has a playlist with
// the given name
func (r *PlaylistRepository) ExistsByUserAndName(userID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Playlist{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

// Update saves the full playlist row
func (r *PlaylistRepository) Update(playlist *models.Playlist) error {
	return r.db.Save(playlist).Error
}

// Delete removes a playlist by ID
func (r *PlaylistRepository) Delete(id uint) error {
	return r.db.Delete(&models.Playlist{}, id).Error
}

// DeleteByUser removes every playlist owned by a user
func (r *PlaylistRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Playlist{}).Error
}

// CreateItem inserts a playlist item row
func (r *PlaylistRepository) CreateItem(item *models.PlaylistItem) error {
	return r.db.Create(item).Error
}

// ItemExists checks whether the channel is already in the playlist
func (r *PlaylistRepository) ItemExists(playlistID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PlaylistItem{}).
		Where("playlist_id = ? AND tv_channel_id = ?", playlistID, channelID).
		Count(&count).Error
	return count > 0, err
}

// DeleteItem removes the playlist item for the pair. Returns
// ErrPlaylistItemNotFound when no row matched.
func (r *PlaylistRepository) DeleteItem(playlistID, channelID uint) error {
	result := r.db.Where("playlist_id = ? AND tv_channel_id = ?", playlistID, channelID).
		Delete(&models.PlaylistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaylistItemNotFound
	}
	return nil
}

// ListItemChannels returns the channels of a playlist, fully hydrated
func (r *PlaylistRepository) ListItemChannels(playlistID uint) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.
		Joins("JOIN playlist_items ON playlist_items.tv_channel_id = tv_channels.id").
		Where("playlist_items.playlist_id = ?", playlistID).
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// DeleteItemsByPlaylist removes every item of a playlist
func (r *PlaylistRepository) DeleteItemsByPlaylist(playlistID uint) error {
	return r.db.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistItem{}).Error
}

// DeleteItemsByChannel removes every playlist item pointing at a channel
func (r *PlaylistRepository) DeleteItemsByChannel(channelID uint) error {
	return r.db.Where("tv_channel_id = ?", channelID).Delete(&models.PlaylistItem{}).Error
}
