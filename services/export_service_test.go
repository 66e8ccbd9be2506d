package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildGuestReport(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	exportDir := t.TempDir()
	svc := NewExportService(db, exportDir)

	group := createTestGroup(t, db, "Smith Wedding")
	_, err := guests.BulkCreate(group.ID, []string{"John Smith", "Jane Smith"})
	require.NoError(t, err)

	path, err := svc.BuildGuestReport()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, ExportFilename), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Group Name", "Check-In", "Check-Out", "Full Name"}, rows[0])
	assert.Equal(t, []string{"Smith Wedding", "2024-06-01", "2024-06-03", "John Smith"}, rows[1])
	assert.Equal(t, []string{"Smith Wedding", "2024-06-01", "2024-06-03", "Jane Smith"}, rows[2])
}

func TestBuildGuestReportOverwritesPreviousExport(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	svc := NewExportService(db, t.TempDir())

	group := createTestGroup(t, db, "First")
	_, err := guests.BulkCreate(group.ID, []string{"Only Guest"})
	require.NoError(t, err)

	first, err := svc.BuildGuestReport()
	require.NoError(t, err)

	_, err = guests.BulkCreate(group.ID, []string{"Second Guest"})
	require.NoError(t, err)

	second, err := svc.BuildGuestReport()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	f, err := excelize.OpenFile(second)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + both guests
}

func TestBuildGuestReportEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, t.TempDir())

	path, err := svc.BuildGuestReport()
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
