package service

import (
	"errors"

	"github.com/tvhub/internal/models"
)

var (
	ErrChannelExists = errors.New("channel already exists")
)

// ChannelService handles catalog operations on TV channels
type ChannelService struct {
	channels  ChannelStore
	likes     LikeStore
	favorites FavoriteStore
	playlists PlaylistStore
}

// NewChannelService creates a new ChannelService
func NewChannelService(channels ChannelStore, likes LikeStore, favorites FavoriteStore, playlists PlaylistStore) *ChannelService {
	return &ChannelService{
		channels:  channels,
		likes:     likes,
		favorites: favorites,
		playlists: playlists,
	}
}

// ChannelRequest carries the caller-supplied channel fields. Description
// and URL are optional: description falls back to the derived form of the
// name, URL falls back to the image reference.
type ChannelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Categoria   string `json:"categoria" binding:"required"`
	URL         string `json:"url"`
	Image       string `json:"image" binding:"required"`
}

// List returns all channels
func (s *ChannelService) List() ([]models.Channel, error) {
	return s.channels.List()
}

// Get returns a channel by ID
func (s *ChannelService) Get(id uint) (*models.Channel, error) {
	return s.channels.GetByID(id)
}

// ListByCategoria returns the channels of a category
func (s *ChannelService) ListByCategoria(categoria string) ([]models.Channel, error) {
	return s.channels.ListByCategoria(categoria)
}

// Create adds a channel to the catalog. Names are unique.
func (s *ChannelService) Create(req *ChannelRequest) (*models.Channel, error) {
	exists, err := s.channels.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrChannelExists
	}

	channel := &models.Channel{
		Name:        req.Name,
		Description: descriptionFor(req),
		Categoria:   req.Categoria,
		URL:         urlFor(req),
		Image:       req.Image,
	}
	if err := s.channels.Create(channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// Update replaces the channel fields, applying the same description and
// URL fallbacks as Create.
func (s *ChannelService) Update(id uint, req *ChannelRequest) (*models.Channel, error) {
	channel, err := s.channels.GetByID(id)
	if err != nil {
		return nil, err
	}

	channel.Name = req.Name
	channel.Description = descriptionFor(req)
	channel.Categoria = req.Categoria
	channel.URL = urlFor(req)
	channel.Image = req.Image
	if err := s.channels.Update(channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// Delete removes a channel. Likes, favorites and playlist items pointing at
// it are left behind unless cascade is set.
func (s *ChannelService) Delete(id uint, cascade bool) error {
	channel, err := s.channels.GetByID(id)
	if err != nil {
		return err
	}

	if cascade {
		if err := s.likes.DeleteByChannel(channel.ID); err != nil {
			return err
		}
		if err := s.favorites.DeleteByChannel(channel.ID); err != nil {
			return err
		}
		if err := s.playlists.DeleteItemsByChannel(channel.ID); err != nil {
			return err
		}
	}

	return s.channels.Delete(channel.ID)
}

// DeleteAll removes every channel from the catalog
func (s *ChannelService) DeleteAll() error {
	return s.channels.DeleteAll()
}

// descriptionFor prefers a caller-supplied description and derives one from
// the name otherwise.
func descriptionFor(req *ChannelRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return models.ChannelDescription(req.Name)
}

func urlFor(req *ChannelRequest) string {
	if req.URL != "" {
		return req.URL
	}
	return req.Image
}
