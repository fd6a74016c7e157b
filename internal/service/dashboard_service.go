package service

import (
	"context"

	"artist-mgmt/internal/model"
)

// DashboardService aggregates entity totals for the landing view.
type DashboardService struct {
	users   UserStore
	artists ArtistStore
	music   MusicStore
}

func NewDashboardService(users UserStore, artists ArtistStore, music MusicStore) *DashboardService {
	return &DashboardService{users: users, artists: artists, music: music}
}

// Stats returns the total users, artists and songs in the envelope meta
// map. The counts are read without a shared snapshot, same as the
// paginated listings.
func (s *DashboardService) Stats(ctx context.Context) (model.BaseResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return model.BaseResponse{}, err
	}

	totalArtists, err := s.artists.Count(ctx)
	if err != nil {
		return model.BaseResponse{}, err
	}

	totalSongs, err := s.music.Count(ctx)
	if err != nil {
		return model.BaseResponse{}, err
	}

	resp := model.OKWithMessage(nil, "Dashboard stats fetched successfully")
	resp.Meta = map[string]any{
		"totalUsers":   totalUsers,
		"totalArtists": totalArtists,
		"totalSongs":   totalSongs,
	}
	return resp, nil
}
