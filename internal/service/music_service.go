package service

import (
	"context"
	"fmt"
	"log/slog"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

type MusicService struct {
	music   MusicStore
	artists ArtistStore
}

func NewMusicService(music MusicStore, artists ArtistStore) *MusicService {
	return &MusicService{music: music, artists: artists}
}

// ListByArtist pages through an artist's songs. The artist must exist;
// an unknown artist id is NotFound, never an empty page.
func (s *MusicService) ListByArtist(ctx context.Context, artistID int64, pageNo, pageSize int) (model.BaseResponse, error) {
	if err := validateID(artistID); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validatePage(pageNo, pageSize); err != nil {
		return model.BaseResponse{}, err
	}

	if err := s.requireArtist(ctx, artistID); err != nil {
		return model.BaseResponse{}, err
	}

	offset := pageNo * pageSize
	songs, err := s.music.ListByArtist(ctx, artistID, pageSize, offset)
	if err != nil {
		return model.BaseResponse{}, err
	}

	totalCount, err := s.music.CountByArtist(ctx, artistID)
	if err != nil {
		return model.BaseResponse{}, err
	}

	return model.Paginated(model.ToMusicResponses(songs), pageNo, pageSize, totalCount, "Songs fetched successfully"), nil
}

// CreateForArtist persists a song under an existing artist. Creating a
// song for a non-existent artist fails with NotFound; an orphan row is
// never written.
func (s *MusicService) CreateForArtist(ctx context.Context, artistID int64, req model.MusicRequest) (model.BaseResponse, error) {
	if err := validateID(artistID); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	entity := toMusicEntity(req)
	if !entity.Genre.Valid() {
		return model.BaseResponse{}, apierror.Validation("genre must be one of MB, COUNTRY, CLASSIC, ROCK, JAZZ")
	}

	if err := s.requireArtist(ctx, artistID); err != nil {
		return model.BaseResponse{}, err
	}

	created, err := s.music.CreateForArtist(ctx, artistID, entity)
	if err != nil {
		return model.BaseResponse{}, err
	}

	fresh, err := s.music.GetByID(ctx, created.ID, artistID)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("song created", "music_id", fresh.ID, "artist_id", artistID)
	resp := model.OK(model.ToMusicResponse(fresh))
	resp.StatusCode = 201
	return resp, nil
}

func (s *MusicService) UpdateForArtist(ctx context.Context, artistID, id int64, req model.MusicRequest) (model.BaseResponse, error) {
	if err := validateID(artistID); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	exists, err := s.music.ExistsByID(ctx, id, artistID)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if !exists {
		return model.BaseResponse{}, apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}

	if err := s.music.UpdateForArtist(ctx, artistID, id, toMusicEntity(req)); err != nil {
		return model.BaseResponse{}, err
	}

	fresh, err := s.music.GetByID(ctx, id, artistID)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("song updated", "music_id", id, "artist_id", artistID)
	return model.OK(model.ToMusicResponse(fresh)), nil
}

func (s *MusicService) DeleteForArtist(ctx context.Context, artistID, id int64) (model.BaseResponse, error) {
	if err := validateID(artistID); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	exists, err := s.music.ExistsByID(ctx, id, artistID)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if !exists {
		return model.BaseResponse{}, apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}

	if err := s.music.DeleteForArtist(ctx, artistID, id); err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("song deleted", "music_id", id, "artist_id", artistID)
	return model.OK(id), nil
}

func (s *MusicService) requireArtist(ctx context.Context, artistID int64) error {
	exists, err := s.artists.ExistsByID(ctx, artistID)
	if err != nil {
		return err
	}
	if !exists {
		return apierror.NotFound(fmt.Sprintf("artist with id %d not found", artistID))
	}
	return nil
}
