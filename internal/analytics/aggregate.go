// Package analytics computes derived engagement statistics from fully
// fetched catalog rows. Every function here is pure: callers fetch the rows,
// these functions only group, count and sort them.
package analytics

import (
	"sort"
	"time"

	"github.com/tvhub/internal/models"
)

// PlaceholderUsername is used for like rows whose user no longer exists
// among the fetched users.
const PlaceholderUsername = "Unknown user"

// ChannelStats is the per-channel engagement summary.
type ChannelStats struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	LikeCount     int    `json:"likeCount"`
	FavoriteCount int    `json:"favoriteCount"`
}

// UserLikeRank is one entry of the top-users-by-likes leaderboard.
type UserLikeRank struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	Avatar     *string `json:"avatar"`
	LikesGiven int     `json:"likesGiven"`
}

// CategoryStats aggregates engagement per channel category.
type CategoryStats struct {
	Categoria     string `json:"categoria"`
	Likes         int    `json:"likes"`
	Favorites     int    `json:"favorites"`
	ChannelsCount int    `json:"channelsCount"`
	Total         int    `json:"total"`
}

// MonthCount is one calendar-month bucket of a time series.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ChannelPerformance counts likes and favorites per channel. The engagement
// arguments are the tv_channel_id columns of the like and favorite rows.
// Channels with no engagement appear with zero counts.
func ChannelPerformance(channels []models.Channel, likes, favorites []uint) []ChannelStats {
	likeCounts := countByID(likes)
	favCounts := countByID(favorites)

	stats := make([]ChannelStats, 0, len(channels))
	for _, ch := range channels {
		stats = append(stats, ChannelStats{
			ID:            ch.ID,
			Name:          ch.Name,
			LikeCount:     likeCounts[ch.ID],
			FavoriteCount: favCounts[ch.ID],
		})
	}
	return stats
}

// TopUsersByLikesGiven ranks users by how many likes they gave, descending.
// The likerIDs argument is the user_id column of the like rows in fetch
// order; ties keep first-appearance order. Users missing from the users
// slice get the placeholder username and a null avatar instead of being
// dropped.
func TopUsersByLikesGiven(likerIDs []uint, users []models.User) []UserLikeRank {
	counts := make(map[uint]int, len(likerIDs))
	order := make([]uint, 0, len(likerIDs))
	for _, id := range likerIDs {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	ranked := make([]UserLikeRank, 0, len(order))
	for _, id := range order {
		entry := UserLikeRank{ID: id, Username: PlaceholderUsername, LikesGiven: counts[id]}
		if u, ok := byID[id]; ok {
			entry.Username = u.Username
			avatar := u.Avatar
			entry.Avatar = &avatar
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikesGiven > ranked[j].LikesGiven
	})
	return ranked
}

// PopularCategories rolls likes and favorites up by channel category,
// descending by total engagement. Categories keep first-appearance order on
// equal totals.
func PopularCategories(channels []models.Channel, likes, favorites []uint) []CategoryStats {
	likeCounts := countByID(likes)
	favCounts := countByID(favorites)

	index := make(map[string]int, len(channels))
	stats := make([]CategoryStats, 0)
	for _, ch := range channels {
		i, ok := index[ch.Categoria]
		if !ok {
			i = len(stats)
			index[ch.Categoria] = i
			stats = append(stats, CategoryStats{Categoria: ch.Categoria})
		}
		stats[i].Likes += likeCounts[ch.ID]
		stats[i].Favorites += favCounts[ch.ID]
		stats[i].ChannelsCount++
	}

	for i := range stats {
		stats[i].Total = stats[i].Likes + stats[i].Favorites
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}

// MonthlyEvolution buckets timestamps by UTC calendar month. Buckets come
// back sorted ascending by the zero-padded "YYYY-MM" label, which is
// chronological order.
func MonthlyEvolution(timestamps []time.Time) []MonthCount {
	counts := make(map[string]int, len(timestamps))
	for _, ts := range timestamps {
		counts[ts.UTC().Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	buckets := make([]MonthCount, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, MonthCount{Month: m, Count: counts[m]})
	}
	return buckets
}

// MostEngaged returns the channel referenced by the most engagement rows.
// The engagement argument is the tv_channel_id column of the rows. Ties go
// to the lowest channel id. The second return is false when there are no
// engagement rows or no channels.
func MostEngaged(channels []models.Channel, engagement []uint) (*models.Channel, bool) {
	if len(engagement) == 0 || len(channels) == 0 {
		return nil, false
	}
	counts := countByID(engagement)

	var best *models.Channel
	for i := range channels {
		ch := &channels[i]
		if best == nil {
			best = ch
			continue
		}
		c, b := counts[ch.ID], counts[best.ID]
		if c > b || (c == b && ch.ID < best.ID) {
			best = ch
		}
	}
	result := *best
	return &result, true
}

func countByID(ids []uint) map[uint]int {
	counts := make(map[uint]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	return counts
}
