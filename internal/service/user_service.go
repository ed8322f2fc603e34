package service

import (
	"errors"

	"github.com/tvhub/internal/models"
	"github.com/tvhub/pkg/crypto"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWrongPassword    = errors.New("current password is invalid")
	ErrUsernameTaken    = errors.New("username already exists")
)

// UserService handles user profile operations
type UserService struct {
	users     UserStore
	likes     LikeStore
	favorites FavoriteStore
	playlists PlaylistStore
}

// NewUserService creates a new UserService
func NewUserService(users UserStore, likes LikeStore, favorites FavoriteStore, playlists PlaylistStore) *UserService {
	return &UserService{
		users:     users,
		likes:     likes,
		favorites: favorites,
		playlists: playlists,
	}
}

// PublicUser is a user row without credential fields
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nametag  string `json:"nametag"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

// List returns all users without credential fields
func (s *UserService) List() ([]PublicUser, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}

	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, PublicUser{
			ID:       u.ID,
			Username: u.Username,
			Nametag:  u.Nametag,
			Avatar:   u.Avatar,
			Email:    u.Email,
		})
	}
	return public, nil
}

// Get returns a single user by ID
func (s *UserService) Get(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

// ChangePassword verifies the current password and replaces it with the
// new one. The new password and its confirmation must match.
func (s *UserService) ChangePassword(id uint, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(current, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}

// UpdateUserData replaces username, email and avatar. The nametag is
// recomputed whenever the username changes.
func (s *UserService) UpdateUserData(id uint, username, email, avatar string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if username != user.Username {
		taken, err := s.users.ExistsByUsername(username, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = username
		user.Nametag = models.Nametag(username)
	}

	user.Email = email
	user.Avatar = avatar
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Relation rows are left behind unless cascade is
// set; parent deletes never cascade implicitly.
func (s *UserService) Delete(id uint, cascade bool) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		return err
	}

	if cascade {
		if err := s.likes.DeleteByUser(user.ID); err != nil {
			return err
		}
		if err := s.favorites.DeleteByUser(user.ID); err != nil {
			return err
		}
		playlists, err := s.playlists.ListByUser(user.ID)
		if err != nil {
			return err
		}
		for _, p := range playlists {
			if err := s.playlists.DeleteItemsByPlaylist(p.ID); err != nil {
				return err
			}
		}
		if err := s.playlists.DeleteByUser(user.ID); err != nil {
			return err
		}
	}

	return s.users.Delete(user.ID)
}
