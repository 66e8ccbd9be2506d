package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"lodging-backend/models"
)

// NameColumnHeader is the header cell that marks the guest-name column
// in an uploaded sheet. Matching is case-insensitive.
const NameColumnHeader = "Full Name"

var (
	ErrMalformedWorkbook = errors.New("uploaded file is not a readable workbook")
	ErrMissingNameColumn = errors.New("workbook has no name column")
)

type ImportService struct {
	Guests    *GuestService
	UploadDir string
}

func NewImportService(guests *GuestService, uploadDir string) *ImportService {
	return &ImportService{Guests: guests, UploadDir: uploadDir}
}

// sanitizeFilename strips any path components from a client-supplied
// filename.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		name = "upload.xlsx"
	}
	return name
}

// Stage writes the uploaded file into the staging directory under a
// collision-free name and returns its path.
func (s *ImportService) Stage(filename string, r io.Reader) (string, error) {
	staged := filepath.Join(s.UploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(filename)))

	out, err := os.Create(staged)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(staged)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(staged)
		return "", err
	}
	return staged, nil
}

// ImportGuests stages the uploaded workbook, extracts the name column
// and bulk-inserts one guest per row into the group. An unreadable
// workbook or a missing name column fails the whole import; rows are
// never partially validated.
func (s *ImportService) ImportGuests(groupID uint, filename string, r io.Reader) ([]models.Guest, error) {
	log.Printf("➡️ ImportService.ImportGuests group_id=%d file=%q", groupID, filename)

	staged, err := s.Stage(filename, r)
	if err != nil {
		return nil, err
	}

	names, err := s.extractNames(staged)
	if err != nil {
		log.Printf("⬅️ ImportService.ImportGuests parse error: %v", err)
		return nil, err
	}

	guests, err := s.Guests.BulkCreate(groupID, names)
	log.Printf("⬅️ ImportService.ImportGuests imported=%d err=%v", len(guests), err)
	return guests, err
}

func (s *ImportService) extractNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: closing workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrMalformedWorkbook
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingNameColumn
	}

	nameCol := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), NameColumnHeader) {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, ErrMissingNameColumn
	}

	var names []string
	for _, row := range rows[1:] {
		if nameCol >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
