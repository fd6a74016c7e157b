// Package service orchestrates repository calls, input validation,
// pagination math and DTO mapping. Services return the response
// envelope the HTTP layer serializes; failures come back as typed
// errors from pkg/apierror.
package service

import (
	"context"

	"artist-mgmt/internal/model"
)

// Store interfaces are declared on the consumer side so services can be
// unit-tested against mocks; internal/repository provides the pgx
// implementations.

type UserStore interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, u model.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}

type ArtistStore interface {
	Create(ctx context.Context, a model.Artist) (model.Artist, error)
	GetByID(ctx context.Context, id int64) (model.Artist, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, a model.Artist) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]model.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type MusicStore interface {
	CreateForArtist(ctx context.Context, artistID int64, m model.Music) (model.Music, error)
	GetByID(ctx context.Context, id, artistID int64) (model.Music, error)
	ExistsByID(ctx context.Context, id, artistID int64) (bool, error)
	UpdateForArtist(ctx context.Context, artistID, id int64, m model.Music) error
	DeleteForArtist(ctx context.Context, artistID, id int64) error
	ListByArtist(ctx context.Context, artistID int64, limit, offset int) ([]model.Music, error)
	CountByArtist(ctx context.Context, artistID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
