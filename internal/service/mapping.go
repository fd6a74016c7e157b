package service

import (
	"strings"
	"time"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

// parseDOB turns an optional YYYY-MM-DD string into a nullable date.
// The validator tags reject malformed values before this runs, so a
// parse failure here still maps to a Validation error rather than 500.
func parseDOB(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return nil, apierror.Validation("dob must be a date in YYYY-MM-DD format")
	}
	return &parsed, nil
}

func toArtistEntity(req model.ArtistRequest) (model.Artist, error) {
	dob, err := parseDOB(req.DOB)
	if err != nil {
		return model.Artist{}, err
	}

	return model.Artist{
		Name:               strings.TrimSpace(req.Name),
		DOB:                dob,
		Gender:             model.ParseGender(req.Gender),
		Address:            strings.TrimSpace(req.Address),
		FirstReleaseYear:   req.FirstReleaseYear,
		NoOfAlbumsReleased: req.NoOfAlbumsReleased,
	}, nil
}

func toMusicEntity(req model.MusicRequest) model.Music {
	return model.Music{
		Title:     strings.TrimSpace(req.Title),
		AlbumName: strings.TrimSpace(req.AlbumName),
		Genre:     model.ParseGenre(req.Genre),
	}
}
