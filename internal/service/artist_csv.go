package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

// csvHeader is the fixed export/import column schema. Import expects
// the same order; the header row itself is always skipped.
var csvHeader = []string{"ID", "Name", "DOB", "Gender", "Address", "First Release Year", "No of Albums Released"}

// ExportCSV writes one page of artists to w in the fixed 7-column
// schema. Quoting and escaping follow standard CSV rules.
func (s *ArtistService) ExportCSV(ctx context.Context, pageNo, pageSize int, w io.Writer) error {
	if err := validatePage(pageNo, pageSize); err != nil {
		return err
	}

	artists, err := s.artists.List(ctx, pageSize, pageNo*pageSize)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, a := range artists {
		dob := ""
		if a.DOB != nil {
			dob = a.DOB.Format(model.DateLayout)
		}
		record := []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			dob,
			string(a.Gender),
			a.Address,
			strconv.Itoa(a.FirstReleaseYear),
			strconv.Itoa(a.NoOfAlbumsReleased),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	slog.Info("artists exported to csv", "count", len(artists))
	return nil
}

// ImportCSV reads an uploaded CSV with a header row and persists each
// valid data row. Short rows and rows whose mandatory fields fail to
// parse are skipped and reported; nothing is silently zero-filled into
// the database.
func (s *ArtistService) ImportCSV(ctx context.Context, r io.Reader) (model.BaseResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := model.ImportReport{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if line == 1 {
			// Header row, discarded whether or not it parsed.
			continue
		}
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: malformed csv: %v", line, err))
			continue
		}

		artist, reason := parseArtistRecord(record)
		if reason != "" {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", line, reason))
			continue
		}

		if _, err := s.artists.Create(ctx, artist); err != nil {
			if apiErr, ok := err.(*apierror.APIError); ok {
				report.Skipped++
				report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", line, apiErr.Message))
				continue
			}
			return model.BaseResponse{}, err
		}
		report.Imported++
	}

	slog.Info("artists imported from csv", "imported", report.Imported, "skipped", report.Skipped)
	return model.OKWithMessage(report, "CSV import completed"), nil
}

// parseArtistRecord maps one data row onto an artist entity. The ID
// column is ignored (ids are server-assigned). A non-empty reason means
// the row must be skipped.
func parseArtistRecord(record []string) (model.Artist, string) {
	if len(record) < len(csvHeader) {
		return model.Artist{}, "too few columns"
	}

	name := strings.TrimSpace(record[1])
	if name == "" {
		return model.Artist{}, "name is empty"
	}

	dob, err := time.Parse(model.DateLayout, strings.TrimSpace(record[2]))
	if err != nil {
		return model.Artist{}, "unparseable dob " + strconv.Quote(record[2])
	}

	address := strings.TrimSpace(record[4])
	if address == "" {
		return model.Artist{}, "address is empty"
	}

	firstReleaseYear, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil || firstReleaseYear <= 0 {
		return model.Artist{}, "invalid first release year " + strconv.Quote(record[5])
	}

	albums, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil || albums < 0 {
		return model.Artist{}, "invalid album count " + strconv.Quote(record[6])
	}

	return model.Artist{
		Name:               name,
		DOB:                &dob,
		Gender:             model.ParseGender(record[3]),
		Address:            address,
		FirstReleaseYear:   firstReleaseYear,
		NoOfAlbumsReleased: albums,
	}, ""
}
