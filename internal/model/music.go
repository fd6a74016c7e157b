package model

import "time"

// Music is a song owned by exactly one artist.
type Music struct {
	ID        int64
	ArtistID  int64
	Title     string
	AlbumName string
	Genre     Genre
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MusicRequest struct {
	Title     string `json:"title" validate:"required"`
	AlbumName string `json:"album_name" validate:"required"`
	Genre     string `json:"genre" validate:"required,oneof=MB COUNTRY CLASSIC ROCK JAZZ mb country classic rock jazz"`
}

type MusicResponse struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artist_id"`
	Title     string `json:"title"`
	AlbumName string `json:"album_name"`
	Genre     Genre  `json:"genre"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToMusicResponse(m Music) MusicResponse {
	return MusicResponse{
		ID:        m.ID,
		ArtistID:  m.ArtistID,
		Title:     m.Title,
		AlbumName: m.AlbumName,
		Genre:     m.Genre,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func ToMusicResponses(songs []Music) []MusicResponse {
	out := make([]MusicResponse, 0, len(songs))
	for _, m := range songs {
		out = append(out, ToMusicResponse(m))
	}
	return out
}
