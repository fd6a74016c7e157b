package service

import (
	"context"
	"log/slog"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

type ArtistService struct {
	artists ArtistStore
}

func NewArtistService(artists ArtistStore) *ArtistService {
	return &ArtistService{artists: artists}
}

// Create persists a new artist and re-fetches it so the response
// carries the server-assigned id and timestamps.
func (s *ArtistService) Create(ctx context.Context, req model.ArtistRequest) (model.BaseResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	entity, err := toArtistEntity(req)
	if err != nil {
		return model.BaseResponse{}, err
	}

	created, err := s.artists.Create(ctx, entity)
	if err != nil {
		return model.BaseResponse{}, err
	}

	fresh, err := s.artists.GetByID(ctx, created.ID)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("artist created", "artist_id", fresh.ID)
	resp := model.OK(model.ToArtistResponse(fresh))
	resp.StatusCode = 201
	return resp, nil
}

func (s *ArtistService) Update(ctx context.Context, id int64, req model.ArtistRequest) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	exists, err := s.artists.ExistsByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if !exists {
		return model.BaseResponse{}, apierror.NotFound("artist not found")
	}

	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	entity, err := toArtistEntity(req)
	if err != nil {
		return model.BaseResponse{}, err
	}

	if err := s.artists.Update(ctx, id, entity); err != nil {
		return model.BaseResponse{}, err
	}

	fresh, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("artist updated", "artist_id", id)
	return model.OK(model.ToArtistResponse(fresh)), nil
}

func (s *ArtistService) Delete(ctx context.Context, id int64) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	exists, err := s.artists.ExistsByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if !exists {
		return model.BaseResponse{}, apierror.NotFound("artist not found")
	}

	if err := s.artists.Delete(ctx, id); err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("artist deleted", "artist_id", id)
	return model.OK(id), nil
}

func (s *ArtistService) GetByID(ctx context.Context, id int64) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}
	return model.OK(model.ToArtistResponse(artist)), nil
}

// List returns one zero-indexed page ordered by creation time
// descending, with the pagination metadata in the envelope meta map.
func (s *ArtistService) List(ctx context.Context, pageNo, pageSize int) (model.BaseResponse, error) {
	if err := validatePage(pageNo, pageSize); err != nil {
		return model.BaseResponse{}, err
	}

	offset := pageNo * pageSize
	artists, err := s.artists.List(ctx, pageSize, offset)
	if err != nil {
		return model.BaseResponse{}, err
	}

	totalCount, err := s.artists.Count(ctx)
	if err != nil {
		return model.BaseResponse{}, err
	}

	return model.Paginated(model.ToArtistResponses(artists), pageNo, pageSize, totalCount, "Artists fetched successfully"), nil
}
