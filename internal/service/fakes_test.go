package service

import (
	"time"

	"github.com/tvhub/internal/models"
	"github.com/tvhub/internal/repository"
)

// In-memory stores standing in for the gorm repositories.

type fakeUsers struct {
	rows   []models.User
	nextID uint
}

func newFakeUsers() *fakeUsers { return &fakeUsers{nextID: 1} }

func (f *fakeUsers) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, *user)
	return nil
}

func (f *fakeUsers) GetByID(id uint) (*models.User, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) List() ([]models.User, error) {
	return append([]models.User(nil), f.rows...), nil
}

func (f *fakeUsers) ExistsByEmail(email string) (bool, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) ExistsByNametag(nametag string) (bool, error) {
	for _, u := range f.rows {
		if u.Nametag == nametag {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) ExistsByUsername(username string, excludeID uint) (bool, error) {
	for _, u := range f.rows {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Update(user *models.User) error {
	for i := range f.rows {
		if f.rows[i].ID == user.ID {
			f.rows[i] = *user
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUsers) Delete(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUsers) CreatedAts() ([]time.Time, error) {
	times := make([]time.Time, 0, len(f.rows))
	for _, u := range f.rows {
		times = append(times, u.CreatedAt)
	}
	return times, nil
}

type fakeChannels struct {
	rows   []models.Channel
	nextID uint
}

func newFakeChannels() *fakeChannels { return &fakeChannels{nextID: 1} }

func (f *fakeChannels) Create(channel *models.Channel) error {
	channel.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *channel)
	return nil
}

func (f *fakeChannels) GetByID(id uint) (*models.Channel, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			ch := f.rows[i]
			return &ch, nil
		}
	}
	return nil, repository.ErrChannelNotFound
}

func (f *fakeChannels) List() ([]models.Channel, error) {
	return append([]models.Channel(nil), f.rows...), nil
}

func (f *fakeChannels) ListByCategoria(categoria string) ([]models.Channel, error) {
	var out []models.Channel
	for _, ch := range f.rows {
		if ch.Categoria == categoria {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (f *fakeChannels) ExistsByName(name string) (bool, error) {
	for _, ch := range f.rows {
		if ch.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeChannels) Update(channel *models.Channel) error {
	for i := range f.rows {
		if f.rows[i].ID == channel.ID {
			f.rows[i] = *channel
			return nil
		}
	}
	return repository.ErrChannelNotFound
}

func (f *fakeChannels) Delete(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeChannels) DeleteAll() error {
	f.rows = nil
	return nil
}

type fakeLikes struct {
	rows     []models.Like
	nextID   uint
	users    *fakeUsers
	channels *fakeChannels
}

func newFakeLikes(users *fakeUsers, channels *fakeChannels) *fakeLikes {
	return &fakeLikes{nextID: 1, users: users, channels: channels}
}

func (f *fakeLikes) Create(like *models.Like) error {
	like.ID = f.nextID
	f.nextID++
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, *like)
	return nil
}

func (f *fakeLikes) Exists(userID, channelID uint) (bool, error) {
	for _, l := range f.rows {
		if l.UserID == userID && l.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikes) Delete(userID, channelID uint) error {
	for i, l := range f.rows {
		if l.UserID == userID && l.ChannelID == channelID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrLikeNotFound
}

func (f *fakeLikes) ListChannelsForUser(userID uint) ([]models.Channel, error) {
	out := []models.Channel{}
	for _, l := range f.rows {
		if l.UserID != userID {
			continue
		}
		if ch, err := f.channels.GetByID(l.ChannelID); err == nil {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakeLikes) ChannelIDs() ([]uint, error) {
	ids := make([]uint, 0, len(f.rows))
	for _, l := range f.rows {
		ids = append(ids, l.ChannelID)
	}
	return ids, nil
}

func (f *fakeLikes) UserIDs() ([]uint, error) {
	ids := make([]uint, 0, len(f.rows))
	for _, l := range f.rows {
		ids = append(ids, l.UserID)
	}
	return ids, nil
}

func (f *fakeLikes) CreatedAts() ([]time.Time, error) {
	times := make([]time.Time, 0, len(f.rows))
	for _, l := range f.rows {
		times = append(times, l.CreatedAt)
	}
	return times, nil
}

func (f *fakeLikes) ListWithUsers() ([]repository.LikeWithUser, error) {
	out := make([]repository.LikeWithUser, 0, len(f.rows))
	for _, l := range f.rows {
		row := repository.LikeWithUser{ChannelID: l.ChannelID, UserID: l.UserID}
		if u, err := f.users.GetByID(l.UserID); err == nil {
			row.Username = u.Username
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeLikes) DeleteByUser(userID uint) error {
	kept := f.rows[:0]
	for _, l := range f.rows {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeLikes) DeleteByChannel(channelID uint) error {
	kept := f.rows[:0]
	for _, l := range f.rows {
		if l.ChannelID != channelID {
			kept = append(kept, l)
		}
	}
	f.rows = kept
	return nil
}

type fakeFavorites struct {
	rows     []models.Favorite
	nextID   uint
	channels *fakeChannels
}

func newFakeFavorites(channels *fakeChannels) *fakeFavorites {
	return &fakeFavorites{nextID: 1, channels: channels}
}

func (f *fakeFavorites) Create(favorite *models.Favorite) error {
	favorite.ID = f.nextID
	f.nextID++
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, *favorite)
	return nil
}

func (f *fakeFavorites) Exists(userID, channelID uint) (bool, error) {
	for _, fav := range f.rows {
		if fav.UserID == userID && fav.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavorites) Delete(userID, channelID uint) error {
	for i, fav := range f.rows {
		if fav.UserID == userID && fav.ChannelID == channelID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrFavoriteNotFound
}

func (f *fakeFavorites) ListChannelsForUser(userID uint) ([]models.Channel, error) {
	out := []models.Channel{}
	for _, fav := range f.rows {
		if fav.UserID != userID {
			continue
		}
		if ch, err := f.channels.GetByID(fav.ChannelID); err == nil {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakeFavorites) ChannelIDs() ([]uint, error) {
	ids := make([]uint, 0, len(f.rows))
	for _, fav := range f.rows {
		ids = append(ids, fav.ChannelID)
	}
	return ids, nil
}

func (f *fakeFavorites) DeleteByUser(userID uint) error {
	kept := f.rows[:0]
	for _, fav := range f.rows {
		if fav.UserID != userID {
			kept = append(kept, fav)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeFavorites) DeleteByChannel(channelID uint) error {
	kept := f.rows[:0]
	for _, fav := range f.rows {
		if fav.ChannelID != channelID {
			kept = append(kept, fav)
		}
	}
	f.rows = kept
	return nil
}

type fakePlaylists struct {
	rows     []models.Playlist
	items    []models.PlaylistItem
	nextID   uint
	channels *fakeChannels
}

func newFakePlaylists(channels *fakeChannels) *fakePlaylists {
	return &fakePlaylists{nextID: 1, channels: channels}
}

func (f *fakePlaylists) Create(playlist *models.Playlist) error {
	playlist.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *playlist)
	return nil
}

func (f *fakePlaylists) GetByID(id uint) (*models.Playlist, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			p := f.rows[i]
			return &p, nil
		}
	}
	return nil, repository.ErrPlaylistNotFound
}

func (f *fakePlaylists) ListByUser(userID uint) ([]models.Playlist, error) {
	out := []models.Playlist{}
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaylists) ExistsByUserAndName(userID uint, name string) (bool, error) {
	for _, p := range f.rows {
		if p.UserID == userID && p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlaylists) Update(playlist *models.Playlist) error {
	for i := range f.rows {
		if f.rows[i].ID == playlist.ID {
			f.rows[i] = *playlist
			return nil
		}
	}
	return repository.ErrPlaylistNotFound
}

func (f *fakePlaylists) Delete(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePlaylists) DeleteByUser(userID uint) error {
	kept := f.rows[:0]
	for _, p := range f.rows {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakePlaylists) CreateItem(item *models.PlaylistItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePlaylists) ItemExists(playlistID, channelID uint) (bool, error) {
	for _, it := range f.items {
		if it.PlaylistID == playlistID && it.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlaylists) DeleteItem(playlistID, channelID uint) error {
	for i, it := range f.items {
		if it.PlaylistID == playlistID && it.ChannelID == channelID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrPlaylistItemNotFound
}

func (f *fakePlaylists) ListItemChannels(playlistID uint) ([]models.Channel, error) {
	out := []models.Channel{}
	for _, it := range f.items {
		if it.PlaylistID != playlistID {
			continue
		}
		if ch, err := f.channels.GetByID(it.ChannelID); err == nil {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakePlaylists) DeleteItemsByPlaylist(playlistID uint) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.PlaylistID != playlistID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakePlaylists) DeleteItemsByChannel(channelID uint) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ChannelID != channelID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}
