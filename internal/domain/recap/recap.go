package recap

import (
	"math"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
)

// Performance holds a student's attendance counts and percentage for a
// reporting period.
type Performance struct {
	Present    int     `json:"present"`
	Excused    int     `json:"excused"`
	Sick       int     `json:"sick"`
	Absent     int     `json:"absent"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ComputePerformance tallies records into counts and a present-percentage
// rounded to one decimal. A period with no records yields 0, never NaN.
func ComputePerformance(records []attendance.Record) Performance {
	var perf Performance

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusHadir:
			perf.Present++
		case attendance.StatusIzin:
			perf.Excused++
		case attendance.StatusSakit:
			perf.Sick++
		case attendance.StatusAlpa:
			perf.Absent++
		}
	}
	perf.Total = perf.Present + perf.Excused + perf.Sick + perf.Absent

	if perf.Total > 0 {
		perf.Percentage = math.Round(float64(perf.Present)/float64(perf.Total)*1000) / 10
	}

	return perf
}

// MatrixCell is rendered as the status abbreviation, or "-" when no
// record exists for that day.
const MatrixEmptyCell = "-"

// MatrixRow is one activity occurrence's row across a month: Cells[d-1]
// holds the value for day d.
type MatrixRow struct {
	OccurrenceID string   `json:"occurrence_id"`
	Label        string   `json:"label"`
	Cells        []string `json:"cells"`
}

// MonthlyMatrix is the printable month grid for one santri or pegawai.
// Days always spans 1..daysInMonth, regardless of how many records exist.
type MonthlyMatrix struct {
	SubjectID   string      `json:"subject_id"`
	SubjectName string      `json:"subject_name,omitempty"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Days        int         `json:"days"`
	Rows        []MatrixRow `json:"rows"`
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthlyMatrix lays student records out on the month grid. Rows are
// keyed by occurrence; every day column exists even when empty.
func BuildMonthlyMatrix(subjectID string, year, month int, records []attendance.Record) MonthlyMatrix {
	days := DaysInMonth(year, month)
	matrix := MonthlyMatrix{
		SubjectID: subjectID,
		Year:      year,
		Month:     month,
		Days:      days,
	}

	rowIndex := make(map[string]int)
	for _, rec := range records {
		idx, ok := rowIndex[rec.OccurrenceID]
		if !ok {
			label := rec.OccurrenceID
			if rec.OccurrenceLabel != nil {
				label = *rec.OccurrenceLabel
			}
			row := MatrixRow{
				OccurrenceID: rec.OccurrenceID,
				Label:        label,
				Cells:        emptyCells(days),
			}
			matrix.Rows = append(matrix.Rows, row)
			idx = len(matrix.Rows) - 1
			rowIndex[rec.OccurrenceID] = idx
		}

		day := rec.Date.Day()
		if day >= 1 && day <= days {
			matrix.Rows[idx].Cells[day-1] = statusAbbrev(rec.Status)
		}
	}

	return matrix
}

// BuildStaffMonthlyMatrix lays staff presence rows out on the month grid.
// Staff absence has no row, so unmarked cells simply stay "-".
func BuildStaffMonthlyMatrix(staffID string, year, month int, records []attendance.StaffRecord) MonthlyMatrix {
	days := DaysInMonth(year, month)
	matrix := MonthlyMatrix{
		SubjectID: staffID,
		Year:      year,
		Month:     month,
		Days:      days,
	}

	rowIndex := make(map[string]int)
	for _, rec := range records {
		idx, ok := rowIndex[rec.OccurrenceID]
		if !ok {
			label := rec.OccurrenceID
			if rec.OccurrenceLabel != nil {
				label = *rec.OccurrenceLabel
			}
			matrix.Rows = append(matrix.Rows, MatrixRow{
				OccurrenceID: rec.OccurrenceID,
				Label:        label,
				Cells:        emptyCells(days),
			})
			idx = len(matrix.Rows) - 1
			rowIndex[rec.OccurrenceID] = idx
		}

		day := rec.Date.Day()
		if day >= 1 && day <= days {
			matrix.Rows[idx].Cells[day-1] = "H"
		}
	}

	return matrix
}

func emptyCells(days int) []string {
	cells := make([]string, days)
	for i := range cells {
		cells[i] = MatrixEmptyCell
	}
	return cells
}

func statusAbbrev(s attendance.Status) string {
	switch s {
	case attendance.StatusHadir:
		return "H"
	case attendance.StatusIzin:
		return "I"
	case attendance.StatusSakit:
		return "S"
	case attendance.StatusAlpa:
		return "A"
	}
	return MatrixEmptyCell
}
