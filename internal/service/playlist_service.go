package service

import (
	"errors"

	"github.com/tvhub/internal/models"
	"github.com/tvhub/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPlaylistExists       = errors.New("playlist with this name already exists")
	ErrChannelInPlaylist    = errors.New("channel is already in the playlist")
	ErrChannelNotInPlaylist = errors.New("channel is not in the playlist")
)

// PlaylistService handles playlists and the playlist-contains-channel
// relation. Same check-then-insert semantics as SocialService.
type PlaylistService struct {
	users     UserStore
	channels  ChannelStore
	playlists PlaylistStore
}

// NewPlaylistService creates a new PlaylistService
func NewPlaylistService(users UserStore, channels ChannelStore, playlists PlaylistStore) *PlaylistService {
	return &PlaylistService{
		users:     users,
		channels:  channels,
		playlists: playlists,
	}
}

// Create adds a playlist for a user. Names are unique per owner.
func (s *PlaylistService) Create(userID uint, name string) (*models.Playlist, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	exists, err := s.playlists.ExistsByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPlaylistExists
	}

	playlist := &models.Playlist{UserID: userID, Name: name}
	if err := s.playlists.Create(playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlaylistExists
		}
		return nil, err
	}
	return playlist, nil
}

// AddItem puts a channel into a playlist
func (s *PlaylistService) AddItem(playlistID, channelID uint) error {
	if _, err := s.playlists.GetByID(playlistID); err != nil {
		return err
	}
	if _, err := s.channels.GetByID(channelID); err != nil {
		return err
	}

	exists, err := s.playlists.ItemExists(playlistID, channelID)
	if err != nil {
		return err
	}
	if exists {
		return ErrChannelInPlaylist
	}

	err = s.playlists.CreateItem(&models.PlaylistItem{PlaylistID: playlistID, ChannelID: channelID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrChannelInPlaylist
	}
	return err
}

// ListForUser returns the playlists owned by a user
func (s *PlaylistService) ListForUser(userID uint) ([]models.Playlist, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	return s.playlists.ListByUser(userID)
}

// Items returns the channels inside a playlist, fully hydrated
func (s *PlaylistService) Items(userID, playlistID uint) ([]models.Channel, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.playlists.GetByID(playlistID); err != nil {
		return nil, err
	}
	return s.playlists.ListItemChannels(playlistID)
}

// Rename changes a playlist name, keeping per-owner uniqueness
func (s *PlaylistService) Rename(userID, playlistID uint, name string) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return err
	}
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return err
	}

	exists, err := s.playlists.ExistsByUserAndName(userID, name)
	if err != nil {
		return err
	}
	if exists {
		return ErrPlaylistExists
	}

	playlist.Name = name
	return s.playlists.Update(playlist)
}

// RemoveItem takes a channel out of a playlist
func (s *PlaylistService) RemoveItem(playlistID, channelID uint) error {
	if _, err := s.playlists.GetByID(playlistID); err != nil {
		return err
	}
	if _, err := s.channels.GetByID(channelID); err != nil {
		return err
	}

	if err := s.playlists.DeleteItem(playlistID, channelID); err != nil {
		if errors.Is(err, repository.ErrPlaylistItemNotFound) {
			return ErrChannelNotInPlaylist
		}
		return err
	}
	return nil
}

// Delete removes a playlist. Its items are left behind unless cascade is set.
func (s *PlaylistService) Delete(userID, playlistID uint, cascade bool) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return err
	}
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return err
	}

	if cascade {
		if err := s.playlists.DeleteItemsByPlaylist(playlist.ID); err != nil {
			return err
		}
	}
	return s.playlists.Delete(playlist.ID)
}
