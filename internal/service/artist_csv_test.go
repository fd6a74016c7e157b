package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"artist-mgmt/internal/model"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()

	store := newFakeArtistStore()
	svc := NewArtistService(store)

	_, err := svc.Create(context.Background(), model.ArtistRequest{
		Name:               "Tara Devi",
		DOB:                "1946-01-15",
		Gender:             "FEMALE",
		Address:            "Kathmandu, \"Nepal\"",
		FirstReleaseYear:   1960,
		NoOfAlbumsReleased: 30,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), 0, 10, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, csvHeader, records[0])
	require.Equal(t, []string{"1", "Tara Devi", "1946-01-15", "FEMALE", `Kathmandu, "Nepal"`, "1960", "30"}, records[1])
}

func TestImportCSV(t *testing.T) {
	t.Parallel()

	t.Run("imports valid rows and skips bad ones", func(t *testing.T) {
		store := newFakeArtistStore()
		svc := NewArtistService(store)

		input := strings.Join([]string{
			"ID,Name,DOB,Gender,Address,First Release Year,No of Albums Released",
			"1,Aruna Lama,1945-09-09,FEMALE,Darjeeling,1966,20",
			"2,,1950-01-01,MALE,Pokhara,1970,5",
			"3,Gopal Yonjan,not-a-date,MALE,Kathmandu,1965,18",
			"4,Phatteman,1948-03-02,MALE,Kathmandu,zero,10",
			"5,short row",
			"6,Amber Gurung,1938-02-26,MALE,Darjeeling,1957,25",
		}, "\n")

		resp, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
		require.NoError(t, err)

		report := resp.DataResponse.(model.ImportReport)
		require.Equal(t, 2, report.Imported)
		require.Equal(t, 4, report.Skipped)
		require.Len(t, report.Errors, 4)
		require.Contains(t, report.Errors[0], "name is empty")
		require.Contains(t, report.Errors[1], "unparseable dob")
		require.Contains(t, report.Errors[2], "invalid first release year")
		require.Contains(t, report.Errors[3], "too few columns")

		require.Len(t, store.artists, 2)
		require.Equal(t, "Aruna Lama", store.artists[1].Name)
		require.Equal(t, "Amber Gurung", store.artists[2].Name)
	})

	t.Run("unknown gender falls back to the sentinel", func(t *testing.T) {
		store := newFakeArtistStore()
		svc := NewArtistService(store)

		input := "ID,Name,DOB,Gender,Address,First Release Year,No of Albums Released\n" +
			"1,Mystery,1980-01-01,ALIEN,Somewhere,1999,1\n"

		resp, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 1, resp.DataResponse.(model.ImportReport).Imported)
		require.Equal(t, model.GenderUnspecified, store.artists[1].Gender)
	})

	t.Run("malformed header is not counted as a skipped row", func(t *testing.T) {
		store := newFakeArtistStore()
		svc := NewArtistService(store)

		input := `ID,"Na"me",DOB,Gender,Address,First Release Year,No of Albums Released` + "\n" +
			"1,Aruna Lama,1945-09-09,FEMALE,Darjeeling,1966,20\n"

		resp, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
		require.NoError(t, err)

		report := resp.DataResponse.(model.ImportReport)
		require.Equal(t, 1, report.Imported)
		require.Zero(t, report.Skipped)
		require.Empty(t, report.Errors)
		require.Equal(t, "Aruna Lama", store.artists[1].Name)
	})

	t.Run("empty input yields an empty report", func(t *testing.T) {
		svc := NewArtistService(newFakeArtistStore())

		resp, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
		require.NoError(t, err)

		report := resp.DataResponse.(model.ImportReport)
		require.Zero(t, report.Imported)
		require.Zero(t, report.Skipped)
	})

	t.Run("round trips its own export", func(t *testing.T) {
		source := newFakeArtistStore()
		srcSvc := NewArtistService(source)
		_, err := srcSvc.Create(context.Background(), validArtistRequest())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, srcSvc.ExportCSV(context.Background(), 0, 10, &buf))

		dest := newFakeArtistStore()
		resp, err := NewArtistService(dest).ImportCSV(context.Background(), &buf)
		require.NoError(t, err)
		require.Equal(t, 1, resp.DataResponse.(model.ImportReport).Imported)
		require.Equal(t, "Narayan Gopal", dest.artists[1].Name)
	})
}
