package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tvhub/internal/analytics"
	"github.com/tvhub/internal/models"
)

var (
	ErrNoEngagement = errors.New("no engagement recorded yet")
)

const (
	// SnapshotKey is the redis key holding the cached channel-performance snapshot
	SnapshotKey = "analytics:snapshot"
	// UpdatesChannel is the redis pub/sub channel for snapshot refreshes
	UpdatesChannel = "analytics_updates"
	// SnapshotTTL bounds how stale a cached snapshot can get
	SnapshotTTL = 10 * time.Minute
)

// AnalyticsService fetches catalog rows and runs the pure aggregators over
// them. The channel-performance snapshot is cached in redis; everything
// else is computed per request.
type AnalyticsService struct {
	users     UserStore
	channels  ChannelStore
	likes     LikeStore
	favorites FavoriteStore
	redis     *redis.Client
}

// NewAnalyticsService creates a new AnalyticsService. The redis client may
// be nil; caching is then skipped entirely.
func NewAnalyticsService(users UserStore, channels ChannelStore, likes LikeStore, favorites FavoriteStore, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		users:     users,
		channels:  channels,
		likes:     likes,
		favorites: favorites,
		redis:     rdb,
	}
}

// ChannelPerformance returns per-channel like/favorite counts, served from
// the redis snapshot when present. Cache failures fall back to a direct
// recompute, never to a request failure.
func (s *AnalyticsService) ChannelPerformance(ctx context.Context) ([]analytics.ChannelStats, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, SnapshotKey).Bytes()
		if err == nil {
			var stats []analytics.ChannelStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("analytics: snapshot cache read failed: %v", err)
		}
	}
	return s.RefreshSnapshot(ctx)
}

// RefreshSnapshot recomputes the channel-performance snapshot, stores it in
// redis and announces the refresh on the updates channel.
func (s *AnalyticsService) RefreshSnapshot(ctx context.Context) ([]analytics.ChannelStats, error) {
	channels, err := s.channels.List()
	if err != nil {
		return nil, err
	}
	likeIDs, err := s.likes.ChannelIDs()
	if err != nil {
		return nil, err
	}
	favIDs, err := s.favorites.ChannelIDs()
	if err != nil {
		return nil, err
	}

	stats := analytics.ChannelPerformance(channels, likeIDs, favIDs)

	if s.redis != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.redis.Set(ctx, SnapshotKey, payload, SnapshotTTL).Err(); err != nil {
				log.Printf("analytics: snapshot cache write failed: %v", err)
			}
			if err := s.redis.Publish(ctx, UpdatesChannel, payload).Err(); err != nil {
				log.Printf("analytics: snapshot publish failed: %v", err)
			}
		}
	}
	return stats, nil
}

// TopUsersByLikes ranks users by likes given
func (s *AnalyticsService) TopUsersByLikes() ([]analytics.UserLikeRank, error) {
	likerIDs, err := s.likes.UserIDs()
	if err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	return analytics.TopUsersByLikesGiven(likerIDs, users), nil
}

// PopularCategories rolls engagement up by channel category
func (s *AnalyticsService) PopularCategories() ([]analytics.CategoryStats, error) {
	channels, err := s.channels.List()
	if err != nil {
		return nil, err
	}
	likeIDs, err := s.likes.ChannelIDs()
	if err != nil {
		return nil, err
	}
	favIDs, err := s.favorites.ChannelIDs()
	if err != nil {
		return nil, err
	}
	return analytics.PopularCategories(channels, likeIDs, favIDs), nil
}

// LikesMonth labels a monthly like count
type LikesMonth struct {
	Month string `json:"month"`
	Likes int    `json:"likes"`
}

// LikesEvolution buckets likes by calendar month
func (s *AnalyticsService) LikesEvolution() ([]LikesMonth, error) {
	times, err := s.likes.CreatedAts()
	if err != nil {
		return nil, err
	}

	buckets := analytics.MonthlyEvolution(times)
	series := make([]LikesMonth, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, LikesMonth{Month: b.Month, Likes: b.Count})
	}
	return series, nil
}

// RegistrationsMonth labels a monthly registration count
type RegistrationsMonth struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

// RegistrationsEvolution buckets user signups by calendar month
func (s *AnalyticsService) RegistrationsEvolution() ([]RegistrationsMonth, error) {
	times, err := s.users.CreatedAts()
	if err != nil {
		return nil, err
	}

	buckets := analytics.MonthlyEvolution(times)
	series := make([]RegistrationsMonth, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, RegistrationsMonth{Month: b.Month, Registrations: b.Count})
	}
	return series, nil
}

// MostLikedChannel returns the channel with the most likes, lowest id on
// ties. ErrNoEngagement when there are no like rows.
func (s *AnalyticsService) MostLikedChannel() (*models.Channel, error) {
	channels, err := s.channels.List()
	if err != nil {
		return nil, err
	}
	likeIDs, err := s.likes.ChannelIDs()
	if err != nil {
		return nil, err
	}

	ch, ok := analytics.MostEngaged(channels, likeIDs)
	if !ok {
		return nil, ErrNoEngagement
	}
	return ch, nil
}

// MostFavoritedChannel returns the channel with the most favorites, lowest
// id on ties. ErrNoEngagement when there are no favorite rows.
func (s *AnalyticsService) MostFavoritedChannel() (*models.Channel, error) {
	channels, err := s.channels.List()
	if err != nil {
		return nil, err
	}
	favIDs, err := s.favorites.ChannelIDs()
	if err != nil {
		return nil, err
	}

	ch, ok := analytics.MostEngaged(channels, favIDs)
	if !ok {
		return nil, ErrNoEngagement
	}
	return ch, nil
}
