package recap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
)

func rec(occurrenceID string, day int, status attendance.Status) attendance.Record {
	return attendance.Record{
		OccurrenceID: occurrenceID,
		Date:         time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Status:       status,
	}
}

func TestComputePerformance(t *testing.T) {
	records := make([]attendance.Record, 0, 10)
	for i := 0; i < 8; i++ {
		records = append(records, rec("subuh", i+1, attendance.StatusHadir))
	}
	records = append(records, rec("subuh", 9, attendance.StatusSakit))
	records = append(records, rec("subuh", 10, attendance.StatusAlpa))

	perf := ComputePerformance(records)
	assert.Equal(t, 8, perf.Present)
	assert.Equal(t, 0, perf.Excused)
	assert.Equal(t, 1, perf.Sick)
	assert.Equal(t, 1, perf.Absent)
	assert.Equal(t, 10, perf.Total)
	assert.Equal(t, 80.0, perf.Percentage)
}

func TestComputePerformance_Rounding(t *testing.T) {
	records := []attendance.Record{
		rec("subuh", 1, attendance.StatusHadir),
		rec("subuh", 2, attendance.StatusHadir),
		rec("subuh", 3, attendance.StatusIzin),
	}

	perf := ComputePerformance(records)
	// 2/3 rounds to one decimal, not a long float.
	assert.Equal(t, 66.7, perf.Percentage)
}

func TestComputePerformance_Empty(t *testing.T) {
	perf := ComputePerformance(nil)
	assert.Equal(t, 0, perf.Total)
	assert.Equal(t, 0.0, perf.Percentage)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, 3))
	assert.Equal(t, 30, DaysInMonth(2026, 4))
	assert.Equal(t, 28, DaysInMonth(2026, 2))
	assert.Equal(t, 29, DaysInMonth(2028, 2)) // leap year
}

func TestBuildMonthlyMatrix(t *testing.T) {
	label := "Sholat Subuh"
	records := []attendance.Record{
		{OccurrenceID: "subuh", OccurrenceLabel: &label, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusHadir},
		{OccurrenceID: "subuh", OccurrenceLabel: &label, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: attendance.StatusIzin},
		{OccurrenceID: "subuh", OccurrenceLabel: &label, Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Status: attendance.StatusSakit},
		{OccurrenceID: "subuh", OccurrenceLabel: &label, Date: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAlpa},
	}

	matrix := BuildMonthlyMatrix("student-1", 2026, 3, records)
	assert.Equal(t, 31, matrix.Days)
	require.Len(t, matrix.Rows, 1)

	row := matrix.Rows[0]
	assert.Equal(t, "Sholat Subuh", row.Label)
	require.Len(t, row.Cells, 31)

	assert.Equal(t, "H", row.Cells[0])
	assert.Equal(t, "I", row.Cells[1])
	assert.Equal(t, "S", row.Cells[14])
	assert.Equal(t, "A", row.Cells[30])

	// Days without a record render as the empty cell.
	assert.Equal(t, MatrixEmptyCell, row.Cells[2])
	assert.Equal(t, MatrixEmptyCell, row.Cells[29])
}

func TestBuildMonthlyMatrix_MultipleOccurrences(t *testing.T) {
	records := []attendance.Record{
		rec("subuh", 1, attendance.StatusHadir),
		rec("ngaji", 1, attendance.StatusHadir),
		rec("subuh", 2, attendance.StatusAlpa),
	}

	matrix := BuildMonthlyMatrix("student-1", 2026, 3, records)
	require.Len(t, matrix.Rows, 2)

	// Row order follows first appearance; a missing label falls back to
	// the occurrence id.
	assert.Equal(t, "subuh", matrix.Rows[0].Label)
	assert.Equal(t, "ngaji", matrix.Rows[1].Label)
}

func TestBuildStaffMonthlyMatrix(t *testing.T) {
	records := []attendance.StaffRecord{
		{OccurrenceID: "subuh", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{OccurrenceID: "subuh", Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	matrix := BuildStaffMonthlyMatrix("staff-1", 2026, 3, records)
	require.Len(t, matrix.Rows, 1)

	row := matrix.Rows[0]
	assert.Equal(t, "H", row.Cells[2])
	assert.Equal(t, "H", row.Cells[3])

	// Staff rows are presence-only: every unrecorded day stays empty
	// rather than being fabricated as absent.
	for i, cell := range row.Cells {
		if i == 2 || i == 3 {
			continue
		}
		assert.Equal(t, MatrixEmptyCell, cell, "day %d", i+1)
	}
}

func TestBuildStaffMonthlyMatrix_NoRecords(t *testing.T) {
	matrix := BuildStaffMonthlyMatrix("staff-1", 2026, 2, nil)
	assert.Equal(t, 28, matrix.Days)
	assert.Empty(t, matrix.Rows)
}
