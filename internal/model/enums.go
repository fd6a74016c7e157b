package model

import "strings"

// Gender of a user or artist. GenderUnspecified is a sentinel used when
// an imported or stored value does not match a known gender; it is never
// a valid value on a create/update payload.
type Gender string

const (
	GenderUnspecified Gender = "UNSPECIFIED"
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderOther       Gender = "OTHER"
)

func ParseGender(raw string) Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(GenderMale):
		return GenderMale
	case string(GenderFemale):
		return GenderFemale
	case string(GenderOther):
		return GenderOther
	default:
		return GenderUnspecified
	}
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Role gates access to operations. Role changes on a user may only be
// performed by a SUPER_ADMIN.
type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleArtistManager Role = "ARTIST_MANAGER"
	RoleArtist        Role = "ARTIST"
)

func ParseRole(raw string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RoleSuperAdmin):
		return RoleSuperAdmin, true
	case string(RoleArtistManager):
		return RoleArtistManager, true
	case string(RoleArtist):
		return RoleArtist, true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Genre of a song. GenreUnspecified is a read-side sentinel only; writes
// must carry a concrete genre.
type Genre string

const (
	GenreUnspecified Genre = "UNSPECIFIED"
	GenreMB          Genre = "MB"
	GenreCountry     Genre = "COUNTRY"
	GenreClassic     Genre = "CLASSIC"
	GenreRock        Genre = "ROCK"
	GenreJazz        Genre = "JAZZ"
)

func ParseGenre(raw string) Genre {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(GenreMB):
		return GenreMB
	case string(GenreCountry):
		return GenreCountry
	case string(GenreClassic):
		return GenreClassic
	case string(GenreRock):
		return GenreRock
	case string(GenreJazz):
		return GenreJazz
	default:
		return GenreUnspecified
	}
}

func (g Genre) Valid() bool {
	switch g {
	case GenreMB, GenreCountry, GenreClassic, GenreRock, GenreJazz:
		return true
	}
	return false
}
