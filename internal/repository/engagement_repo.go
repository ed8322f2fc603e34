package repository

import (
	"errors"
	"time"

	"github.com/tvhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrLikeNotFound     = errors.New("like not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// LikeRepository handles like relation data access
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create inserts a like row
func (r *LikeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Exists checks whether the user already liked the channel
func (r *LikeRepository) Exists(userID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND tv_channel_id = ?", userID, channelID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the like row for the pair. Returns ErrLikeNotFound when
// no row matched.
func (r *LikeRepository) Delete(userID, channelID uint) error {
	result := r.db.Where("user_id = ? AND tv_channel_id = ?", userID, channelID).
		Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// ListChannelsForUser returns the channels a user liked, fully hydrated
func (r *LikeRepository) ListChannelsForUser(userID uint) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.
		Joins("JOIN likes ON likes.tv_channel_id = tv_channels.id").
		Where("likes.user_id = ?", userID).
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// ChannelIDs returns the tv_channel_id column of every like row
func (r *LikeRepository) ChannelIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).Pluck("tv_channel_id", &ids).Error
	return ids, err
}

// UserIDs returns the user_id column of every like row in insertion order
func (r *LikeRepository) UserIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).Order("id").Pluck("user_id", &ids).Error
	return ids, err
}

// CreatedAts returns the created_at column of every like row
func (r *LikeRepository) CreatedAts() ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&models.Like{}).Pluck("created_at", &times).Error
	return times, err
}

// LikeWithUser is a like row joined with the liking user's name
type LikeWithUser struct {
	ChannelID uint   `json:"tv_channel_id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
}

// ListWithUsers returns every like row joined with its user's name
func (r *LikeRepository) ListWithUsers() ([]LikeWithUser, error) {
	var rows []LikeWithUser
	err := r.db.Model(&models.Like{}).
		Select("likes.tv_channel_id AS channel_id, likes.user_id AS user_id, users.username AS username").
		Joins("LEFT JOIN users ON users.id = likes.user_id").
		Order("likes.id").
		Scan(&rows).Error
	return rows, err
}

// DeleteByUser removes every like given by a user
func (r *LikeRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Like{}).Error
}

// DeleteByChannel removes every like pointing at a channel
func (r *LikeRepository) DeleteByChannel(channelID uint) error {
	return r.db.Where("tv_channel_id = ?", channelID).Delete(&models.Like{}).Error
}

// FavoriteRepository handles favorite relation data access
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite row
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Exists checks whether the user already favorited the channel
func (r *FavoriteRepository) Exists(userID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND tv_channel_id = ?", userID, channelID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the favorite row for the pair. Returns ErrFavoriteNotFound
// when no row matched.
func (r *FavoriteRepository) Delete(userID, channelID uint) error {
	result := r.db.Where("user_id = ? AND tv_channel_id = ?", userID, channelID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListChannelsForUser returns the channels a user favorited, fully hydrated
func (r *FavoriteRepository) ListChannelsForUser(userID uint) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.
		Joins("JOIN favorites ON favorites.tv_channel_id = tv_channels.id").
		Where("favorites.user_id = ?", userID).
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// ChannelIDs returns the tv_channel_id column of every favorite row
func (r *FavoriteRepository) ChannelIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).Pluck("tv_channel_id", &ids).Error
	return ids, err
}

// DeleteByUser removes every favorite given by a user
func (r *FavoriteRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error
}

// DeleteByChannel removes every favorite pointing at a channel
func (r *FavoriteRepository) DeleteByChannel(channelID uint) error {
	return r.db.Where("tv_channel_id = ?", channelID).Delete(&models.Favorite{}).Error
}
