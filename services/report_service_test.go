package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialReportTotalsMatchGuestPrices(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	reports := NewReportService(db)

	groupA := createTestGroup(t, db, "Group A")
	groupB := createTestGroup(t, db, "Group B")
	groupC := createTestGroup(t, db, "Group C") // stays empty

	a, err := guests.BulkCreate(groupA.ID, []string{"A1", "A2", "A3"})
	require.NoError(t, err)
	b, err := guests.BulkCreate(groupB.ID, []string{"B1", "B2"})
	require.NoError(t, err)

	// A1 single, A2 triple, A3 never assigned.
	_, err = guests.AssignRoom(a[0].ID, "101", "single")
	require.NoError(t, err)
	_, err = guests.AssignRoom(a[1].ID, "102", "triple")
	require.NoError(t, err)

	// B1 double, B2 unknown type priced at zero.
	_, err = guests.AssignRoom(b[0].ID, "201", "double")
	require.NoError(t, err)
	_, err = guests.AssignRoom(b[1].ID, "202", "penthouse")
	require.NoError(t, err)

	report, total, err := reports.FinancialReport()
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "Group A", report[0].GroupName)
	assert.Equal(t, 300, report[0].Total)
	assert.Equal(t, "Group B", report[1].GroupName)
	assert.Equal(t, 150, report[1].Total)
	assert.Equal(t, groupC.ID, report[2].GroupID)
	assert.Equal(t, "Group C", report[2].GroupName)
	assert.Equal(t, 0, report[2].Total)

	sum := 0
	for _, line := range report {
		sum += line.Total
	}
	assert.Equal(t, sum, total)
	assert.Equal(t, 450, total)
}

func TestFinancialReportEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)

	report, total, err := reports.FinancialReport()
	require.NoError(t, err)
	assert.Empty(t, report)
	assert.Zero(t, total)
}

// The worked example from the product brief: one group, three guests,
// one assigned a double room.
func TestSmithWeddingScenario(t *testing.T) {
	db := newTestDB(t)
	guests := NewGuestService(db)
	reports := NewReportService(db)

	group := createTestGroup(t, db, "Smith Wedding")

	imported, err := guests.BulkCreate(group.ID, []string{"John Smith", "Jane Smith", "Jim Smith"})
	require.NoError(t, err)
	require.Len(t, imported, 3)

	_, err = guests.AssignRoom(imported[0].ID, "101", "double")
	require.NoError(t, err)

	report, total, err := reports.FinancialReport()
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "Smith Wedding", report[0].GroupName)
	assert.Equal(t, 150, report[0].Total)
	assert.Equal(t, 150, total)
}
