package service

import (
	"time"

	"github.com/tvhub/internal/models"
	"github.com/tvhub/internal/repository"
)

// Store interfaces consumed by the services. The gorm repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.

// UserStore provides user row access
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByNametag(nametag string) (bool, error)
	ExistsByUsername(username string, excludeID uint) (bool, error)
	Update(user *models.User) error
	Delete(id uint) error
	CreatedAts() ([]time.Time, error)
}

// ChannelStore provides channel row access
type ChannelStore interface {
	Create(channel *models.Channel) error
	GetByID(id uint) (*models.Channel, error)
	List() ([]models.Channel, error)
	ListByCategoria(categoria string) ([]models.Channel, error)
	ExistsByName(name string) (bool, error)
	Update(channel *models.Channel) error
	Delete(id uint) error
	DeleteAll() error
}

// LikeStore provides like relation access
type LikeStore interface {
	Create(like *models.Like) error
	Exists(userID, channelID uint) (bool, error)
	Delete(userID, channelID uint) error
	ListChannelsForUser(userID uint) ([]models.Channel, error)
	ChannelIDs() ([]uint, error)
	UserIDs() ([]uint, error)
	CreatedAts() ([]time.Time, error)
	ListWithUsers() ([]repository.LikeWithUser, error)
	DeleteByUser(userID uint) error
	DeleteByChannel(channelID uint) error
}

// FavoriteStore provides favorite relation access
type FavoriteStore interface {
	Create(favorite *models.Favorite) error
	Exists(userID, channelID uint) (bool, error)
	Delete(userID, channelID uint) error
	ListChannelsForUser(userID uint) ([]models.Channel, error)
	ChannelIDs() ([]uint, error)
	DeleteByUser(userID uint) error
	DeleteByChannel(channelID uint) error
}

// PlaylistStore provides playlist and playlist item access
type PlaylistStore interface {
	Create(playlist *models.Playlist) error
	GetByID(id uint) (*models.Playlist, error)
	ListByUser(userID uint) ([]models.Playlist, error)
	ExistsByUserAndName(userID uint, name string) (bool, error)
	Update(playlist *models.Playlist) error
	Delete(id uint) error
	DeleteByUser(userID uint) error
	CreateItem(item *models.PlaylistItem) error
	ItemExists(playlistID, channelID uint) (bool, error)
	DeleteItem(playlistID, channelID uint) error
	ListItemChannels(playlistID uint) ([]models.Channel, error)
	DeleteItemsByPlaylist(playlistID uint) error
	DeleteItemsByChannel(channelID uint) error
}
