package service

import (
	"errors"

	"github.com/tvhub/internal/models"
	"github.com/tvhub/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked     = errors.New("user already liked this channel")
	ErrNotLiked         = errors.New("channel is not liked")
	ErrAlreadyFavorited = errors.New("channel is already in favorites")
	ErrNotFavorited     = errors.New("channel is not in favorites")
)

// SocialService maintains the user-likes-channel and user-favorites-channel
// relations. Adds are check-then-insert with a friendly conflict error; the
// store-level unique index backs the check up, so a racing insert surfaces
// as the same conflict instead of a duplicate row.
type SocialService struct {
	users     UserStore
	channels  ChannelStore
	likes     LikeStore
	favorites FavoriteStore
}

// NewSocialService creates a new SocialService
func NewSocialService(users UserStore, channels ChannelStore, likes LikeStore, favorites FavoriteStore) *SocialService {
	return &SocialService{
		users:     users,
		channels:  channels,
		likes:     likes,
		favorites: favorites,
	}
}

// Like records that a user liked a channel
func (s *SocialService) Like(userID, channelID uint) error {
	if err := s.checkPair(userID, channelID); err != nil {
		return err
	}

	exists, err := s.likes.Exists(userID, channelID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyLiked
	}

	err = s.likes.Create(&models.Like{UserID: userID, ChannelID: channelID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyLiked
	}
	return err
}

// Unlike removes a like. Removing a like that does not exist fails.
func (s *SocialService) Unlike(userID, channelID uint) error {
	if err := s.likes.Delete(userID, channelID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return ErrNotLiked
		}
		return err
	}
	return nil
}

// LikedChannels returns the channels a user liked, fully hydrated
func (s *SocialService) LikedChannels(userID uint) ([]models.Channel, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	return s.likes.ListChannelsForUser(userID)
}

// ChannelLikes summarizes one channel with its like count and likers
type ChannelLikes struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Image       string        `json:"image"`
	LikeCount   int           `json:"like_count"`
	LikedBy     []LikedByUser `json:"liked_by"`
}

// LikedByUser identifies a user who liked a channel
type LikedByUser struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"user_name"`
}

// ChannelsWithLikes returns every channel with its like count and the users
// who liked it
func (s *SocialService) ChannelsWithLikes() ([]ChannelLikes, error) {
	channels, err := s.channels.List()
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.ListWithUsers()
	if err != nil {
		return nil, err
	}

	byChannel := make(map[uint][]LikedByUser, len(channels))
	for _, l := range likes {
		byChannel[l.ChannelID] = append(byChannel[l.ChannelID], LikedByUser{
			UserID:   l.UserID,
			Username: l.Username,
		})
	}

	result := make([]ChannelLikes, 0, len(channels))
	for _, ch := range channels {
		likedBy := byChannel[ch.ID]
		if likedBy == nil {
			likedBy = []LikedByUser{}
		}
		result = append(result, ChannelLikes{
			ID:          ch.ID,
			Name:        ch.Name,
			Description: ch.Description,
			URL:         ch.URL,
			Image:       ch.Image,
			LikeCount:   len(likedBy),
			LikedBy:     likedBy,
		})
	}
	return result, nil
}

// Favorite records that a user favorited a channel
func (s *SocialService) Favorite(userID, channelID uint) error {
	if err := s.checkPair(userID, channelID); err != nil {
		return err
	}

	exists, err := s.favorites.Exists(userID, channelID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorited
	}

	err = s.favorites.Create(&models.Favorite{UserID: userID, ChannelID: channelID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyFavorited
	}
	return err
}

// Unfavorite removes a favorite. Removing a favorite that does not exist fails.
func (s *SocialService) Unfavorite(userID, channelID uint) error {
	if err := s.favorites.Delete(userID, channelID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return ErrNotFavorited
		}
		return err
	}
	return nil
}

// FavoriteChannels returns the channels a user favorited, fully hydrated
func (s *SocialService) FavoriteChannels(userID uint) ([]models.Channel, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}
	return s.favorites.ListChannelsForUser(userID)
}

// checkPair verifies that both the user and the channel exist before a
// relation row is inserted.
func (s *SocialService) checkPair(userID, channelID uint) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return err
	}
	if _, err := s.channels.GetByID(channelID); err != nil {
		return err
	}
	return nil
}
