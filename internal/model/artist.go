package model

import "time"

// DateLayout is the wire format for date-of-birth fields and CSV date
// columns.
const DateLayout = "2006-01-02"

type Artist struct {
	ID                 int64
	Name               string
	DOB                *time.Time
	Gender             Gender
	Address            string
	FirstReleaseYear   int
	NoOfAlbumsReleased int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ArtistRequest struct {
	Name               string `json:"name" validate:"required"`
	DOB                string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender             string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER male female other"`
	Address            string `json:"address" validate:"required"`
	FirstReleaseYear   int    `json:"first_release_year" validate:"required,gt=0"`
	NoOfAlbumsReleased int    `json:"no_of_albums_released" validate:"gte=0"`
}

type ArtistResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	DOB                *string `json:"dob,omitempty"`
	Gender             Gender  `json:"gender"`
	Address            string  `json:"address"`
	FirstReleaseYear   int     `json:"first_release_year"`
	NoOfAlbumsReleased int     `json:"no_of_albums_released"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// ImportReport summarizes a CSV import: rows persisted, rows skipped,
// and a per-row reason for every skip.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func ToArtistResponse(a Artist) ArtistResponse {
	resp := ArtistResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Gender:             a.Gender,
		Address:            a.Address,
		FirstReleaseYear:   a.FirstReleaseYear,
		NoOfAlbumsReleased: a.NoOfAlbumsReleased,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
	if a.DOB != nil {
		dob := a.DOB.Format(DateLayout)
		resp.DOB = &dob
	}
	return resp
}

func ToArtistResponses(artists []Artist) []ArtistResponse {
	out := make([]ArtistResponse, 0, len(artists))
	for _, a := range artists {
		out = append(out, ToArtistResponse(a))
	}
	return out
}
