package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header string, names []string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if header != "" {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", header))
	}
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, name))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportGuests(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	svc := NewImportService(guests, t.TempDir())
	group := createTestGroup(t, db, "Imported")

	names := []string{"Alice Adams", "Bob Brown", "Cara Clark"}
	buf := buildWorkbook(t, "Full Name", names)

	imported, err := svc.ImportGuests(group.ID, "guests.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, imported, 3)

	listed, err := guests.ListByGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, guest := range listed {
		assert.Equal(t, names[i], guest.FullName)
		assert.Nil(t, guest.RoomType)
	}
}

func TestImportHeaderMatchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	svc := NewImportService(guests, t.TempDir())
	group := createTestGroup(t, db, "Imported")

	buf := buildWorkbook(t, "FULL NAME", []string{"Dora Dunn"})

	imported, err := svc.ImportGuests(group.ID, "guests.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Dora Dunn", imported[0].FullName)
}

func TestImportMissingNameColumnFailsWholeImport(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	svc := NewImportService(guests, t.TempDir())
	group := createTestGroup(t, db, "Imported")

	buf := buildWorkbook(t, "Room", []string{"101", "102"})

	_, err := svc.ImportGuests(group.ID, "guests.xlsx", buf)
	assert.ErrorIs(t, err, ErrMissingNameColumn)

	listed, err := guests.ListByGroup(group.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestImportMalformedFile(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	svc := NewImportService(guests, t.TempDir())
	group := createTestGroup(t, db, "Imported")

	_, err := svc.ImportGuests(group.ID, "notes.txt", bytes.NewBufferString("not a workbook"))
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("stream interrupted")
}

func TestStageRemovesPartialFileOnCopyError(t *testing.T) {
	uploadDir := t.TempDir()
	svc := NewImportService(nil, uploadDir)

	_, err := svc.Stage("guests.xlsx", brokenReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial upload must not linger in the staging dir")
}

func TestImportStagesUploadedFile(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	uploadDir := t.TempDir()
	svc := NewImportService(guests, uploadDir)
	group := createTestGroup(t, db, "Imported")

	buf := buildWorkbook(t, "Full Name", []string{"Eve Evans"})
	_, err := svc.ImportGuests(group.ID, "../../evil/guests.xlsx", buf)
	require.NoError(t, err)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Path components stripped, original basename kept.
	name := entries[0].Name()
	assert.Contains(t, name, "guests.xlsx")
	assert.NotContains(t, name, "..")
	assert.Equal(t, name, filepath.Base(name))
}
