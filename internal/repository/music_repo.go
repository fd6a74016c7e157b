package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

const musicColumns = `id, artist_id, title, album_name, genre, created_at, updated_at`

type MusicRepository struct {
	pool *pgxpool.Pool
}

func NewMusicRepository(pool *pgxpool.Pool) *MusicRepository {
	return &MusicRepository{pool: pool}
}

func (r *MusicRepository) CreateForArtist(ctx context.Context, artistID int64, m model.Music) (model.Music, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO music (artist_id, title, album_name, genre)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		artistID, m.Title, m.AlbumName, string(m.Genre)).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Music{}, apierror.Failed("failed to retrieve generated id for song")
	}
	if err != nil {
		return model.Music{}, fmt.Errorf("create song: %w", err)
	}
	m.ArtistID = artistID
	return m, nil
}

// GetByID fetches a song scoped to its owning artist; a song id under a
// different artist is a miss.
func (r *MusicRepository) GetByID(ctx context.Context, id, artistID int64) (model.Music, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+musicColumns+` FROM music WHERE id = $1 AND artist_id = $2`, id, artistID)

	m, err := scanMusic(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Music{}, apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}
	if err != nil {
		return model.Music{}, fmt.Errorf("get song by id: %w", err)
	}
	return m, nil
}

// ExistsByID reports true iff the song exists under the given artist.
func (r *MusicRepository) ExistsByID(ctx context.Context, id, artistID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM music WHERE id = $1 AND artist_id = $2)`,
		id, artistID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check song exists: %w", err)
	}
	return exists, nil
}

func (r *MusicRepository) UpdateForArtist(ctx context.Context, artistID, id int64, m model.Music) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE music SET title = $3, album_name = $4, genre = $5, updated_at = $6
		 WHERE id = $1 AND artist_id = $2`,
		id, artistID, m.Title, m.AlbumName, string(m.Genre), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}
	return nil
}

func (r *MusicRepository) DeleteForArtist(ctx context.Context, artistID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM music WHERE id = $1 AND artist_id = $2`, id, artistID)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}
	return nil
}

func (r *MusicRepository) ListByArtist(ctx context.Context, artistID int64, limit, offset int) ([]model.Music, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+musicColumns+` FROM music WHERE artist_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		artistID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := make([]model.Music, 0)
	for rows.Next() {
		m, err := scanMusic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, m)
	}
	return songs, rows.Err()
}

func (r *MusicRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(id) FROM music WHERE artist_id = $1`, artistID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count songs by artist: %w", err)
	}
	return count, nil
}

func (r *MusicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(id) FROM music`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count songs: %w", err)
	}
	return count, nil
}

func scanMusic(row pgx.Row) (model.Music, error) {
	var (
		m     model.Music
		genre string
	)
	err := row.Scan(&m.ID, &m.ArtistID, &m.Title, &m.AlbumName, &genre, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.Music{}, err
	}

	m.Genre = model.ParseGenre(genre)
	return m, nil
}
