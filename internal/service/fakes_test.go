package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

// In-memory store fakes mirroring the pgx repositories' error
// contracts: missing rows come back as NotFound-kind errors.

type fakeUserStore struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, apierror.NotFound("user not found")
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, apierror.NotFound("user with email " + email + " not found")
}

func (f *fakeUserStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(_ context.Context, id int64, u model.User) error {
	existing, ok := f.users[id]
	if !ok {
		return apierror.NotFound("user not found")
	}
	u.ID = id
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apierror.NotFound("user not found")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) List(_ context.Context, limit, offset int) ([]model.User, error) {
	all := make([]model.User, 0, len(f.users))
	for id := int64(1); id <= f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			all = append(all, u)
		}
	}
	return page(all, limit, offset), nil
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeArtistStore struct {
	artists map[int64]model.Artist
	nextID  int64
}

func newFakeArtistStore() *fakeArtistStore {
	return &fakeArtistStore{artists: map[int64]model.Artist{}}
}

func (f *fakeArtistStore) Create(_ context.Context, a model.Artist) (model.Artist, error) {
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.artists[a.ID] = a
	return a, nil
}

func (f *fakeArtistStore) GetByID(_ context.Context, id int64) (model.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return model.Artist{}, apierror.NotFound("artist not found")
	}
	return a, nil
}

func (f *fakeArtistStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.artists[id]
	return ok, nil
}

func (f *fakeArtistStore) Update(_ context.Context, id int64, a model.Artist) error {
	existing, ok := f.artists[id]
	if !ok {
		return apierror.NotFound("artist not found")
	}
	a.ID = id
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	f.artists[id] = a
	return nil
}

func (f *fakeArtistStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.artists[id]; !ok {
		return apierror.NotFound("artist not found")
	}
	delete(f.artists, id)
	return nil
}

func (f *fakeArtistStore) List(_ context.Context, limit, offset int) ([]model.Artist, error) {
	all := make([]model.Artist, 0, len(f.artists))
	for id := int64(1); id <= f.nextID; id++ {
		if a, ok := f.artists[id]; ok {
			all = append(all, a)
		}
	}
	return page(all, limit, offset), nil
}

func (f *fakeArtistStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.artists)), nil
}

type fakeMusicStore struct {
	songs  map[int64]model.Music
	nextID int64
}

func newFakeMusicStore() *fakeMusicStore {
	return &fakeMusicStore{songs: map[int64]model.Music{}}
}

func (f *fakeMusicStore) CreateForArtist(_ context.Context, artistID int64, m model.Music) (model.Music, error) {
	f.nextID++
	m.ID = f.nextID
	m.ArtistID = artistID
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	f.songs[m.ID] = m
	return m, nil
}

func (f *fakeMusicStore) GetByID(_ context.Context, id, artistID int64) (model.Music, error) {
	m, ok := f.songs[id]
	if !ok || m.ArtistID != artistID {
		return model.Music{}, apierror.NotFound(fmt.Sprintf("song with id %d not found for artist", id))
	}
	return m, nil
}

func (f *fakeMusicStore) ExistsByID(_ context.Context, id, artistID int64) (bool, error) {
	m, ok := f.songs[id]
	return ok && m.ArtistID == artistID, nil
}

func (f *fakeMusicStore) UpdateForArtist(_ context.Context, artistID, id int64, m model.Music) error {
	existing, ok := f.songs[id]
	if !ok || existing.ArtistID != artistID {
		return apierror.NotFound("song not found")
	}
	m.ID = id
	m.ArtistID = artistID
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	f.songs[id] = m
	return nil
}

func (f *fakeMusicStore) DeleteForArtist(_ context.Context, artistID, id int64) error {
	existing, ok := f.songs[id]
	if !ok || existing.ArtistID != artistID {
		return apierror.NotFound("song not found")
	}
	delete(f.songs, id)
	return nil
}

func (f *fakeMusicStore) ListByArtist(_ context.Context, artistID int64, limit, offset int) ([]model.Music, error) {
	all := make([]model.Music, 0, len(f.songs))
	for id := int64(1); id <= f.nextID; id++ {
		if m, ok := f.songs[id]; ok && m.ArtistID == artistID {
			all = append(all, m)
		}
	}
	return page(all, limit, offset), nil
}

func (f *fakeMusicStore) CountByArtist(_ context.Context, artistID int64) (int64, error) {
	var n int64
	for _, m := range f.songs {
		if m.ArtistID == artistID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMusicStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.songs)), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
