package repository

import (
	"errors"

	"github.com/tvhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
)

// ChannelRepository handles channel data access
type ChannelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create creates a new channel
func (r *ChannelRepository) Create(channel *models.Channel) error {
	return r.db.Create(channel).Error
}

// GetByID retrieves a channel by ID
func (r *ChannelRepository) GetByID(id uint) (*models.Channel, error) {
	var channel models.Channel
	result := r.db.First(&channel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, result.Error
	}
	return &channel, nil
}

// List retrieves all channels
func (r *ChannelRepository) List() ([]models.Channel, error) {
	var channels []models.Channel
	if err := r.db.Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// ListByCategoria retrieves all channels of a category
func (r *ChannelRepository) ListByCategoria(categoria string) ([]models.Channel, error) {
	var channels []models.Channel
	if err := r.db.Where("categoria = ?", categoria).Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// ExistsByName checks whether a channel with the given name exists
func (r *ChannelRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Channel{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Update saves the full channel row
func (r *ChannelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}

// Delete removes a channel by ID
func (r *ChannelRepository) Delete(id uint) error {
	return r.db.Delete(&models.Channel{}, id).Error
}

// DeleteAll removes every channel row
func (r *ChannelRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Channel{}).Error
}
