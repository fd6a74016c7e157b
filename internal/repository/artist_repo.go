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

const artistColumns = `id, name, dob, gender, address, first_release_year, no_of_albums_released, created_at, updated_at`

type ArtistRepository struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) *ArtistRepository {
	return &ArtistRepository{pool: pool}
}

func (r *ArtistRepository) Create(ctx context.Context, a model.Artist) (model.Artist, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO artist (name, dob, gender, address, first_release_year, no_of_albums_released)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.DOB, string(a.Gender), a.Address, a.FirstReleaseYear, a.NoOfAlbumsReleased).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Artist{}, apierror.Failed("failed to retrieve generated id for artist")
	}
	if err != nil {
		return model.Artist{}, fmt.Errorf("create artist: %w", err)
	}
	return a, nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (model.Artist, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+artistColumns+` FROM artist WHERE id = $1`, id)

	a, err := scanArtist(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Artist{}, apierror.NotFound(fmt.Sprintf("artist with id %d not found", id))
	}
	if err != nil {
		return model.Artist{}, fmt.Errorf("get artist by id: %w", err)
	}
	return a, nil
}

// ExistsByID reports true iff an artist row with the given id is present.
func (r *ArtistRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM artist WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check artist exists: %w", err)
	}
	return exists, nil
}

func (r *ArtistRepository) Update(ctx context.Context, id int64, a model.Artist) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE artist SET name = $2, dob = $3, gender = $4, address = $5,
		        first_release_year = $6, no_of_albums_released = $7, updated_at = $8
		 WHERE id = $1`,
		id, a.Name, a.DOB, string(a.Gender), a.Address,
		a.FirstReleaseYear, a.NoOfAlbumsReleased, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(fmt.Sprintf("artist with id %d not found", id))
	}
	return nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(fmt.Sprintf("artist with id %d not found", id))
	}
	return nil
}

func (r *ArtistRepository) List(ctx context.Context, limit, offset int) ([]model.Artist, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+artistColumns+` FROM artist ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := make([]model.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *ArtistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(id) FROM artist`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count artists: %w", err)
	}
	return count, nil
}

func scanArtist(row pgx.Row) (model.Artist, error) {
	var (
		a      model.Artist
		gender string
	)
	err := row.Scan(&a.ID, &a.Name, &a.DOB, &gender, &a.Address,
		&a.FirstReleaseYear, &a.NoOfAlbumsReleased, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Artist{}, err
	}

	a.Gender = model.ParseGender(gender)
	return a, nil
}
