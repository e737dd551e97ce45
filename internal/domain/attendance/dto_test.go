package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestRecordRequestValidate_OK(t *testing.T) {
	req := RecordRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		StudentID:    "01890a5d-ac96-774b-bcce-b302099a8058",
		Status:       "hadir",
	}
	assert.NoError(t, req.Validate())

	req.Date = "2024-03-15"
	assert.NoError(t, req.Validate())
}

func TestRecordRequestValidate_InvalidStatus(t *testing.T) {
	req := RecordRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		StudentID:    "01890a5d-ac96-774b-bcce-b302099a8058",
		Status:       "bolos",
	}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "status")
}

func TestRecordRequestValidate_MissingFields(t *testing.T) {
	req := RecordRequest{Status: "hadir"}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "occurrence_id")
	assert.Contains(t, errs, "student_id")
}

func TestRecordRequestValidate_BadDate(t *testing.T) {
	req := RecordRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		StudentID:    "01890a5d-ac96-774b-bcce-b302099a8058",
		Status:       "sakit",
		Date:         "15-03-2024",
	}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "date")
}

func TestRollCallRequestValidate_OK(t *testing.T) {
	req := RollCallRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		Entries: []RosterEntry{
			{StudentID: "a", Status: "hadir"},
			{StudentID: "b", Status: "izin"},
			{StudentID: "c", Status: "alpa"},
		},
	}
	assert.NoError(t, req.Validate())
}

func TestRollCallRequestValidate_EmptyRoster(t *testing.T) {
	req := RollCallRequest{OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057"}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "entries")
}

func TestRollCallRequestValidate_EntryMissingStatus(t *testing.T) {
	req := RollCallRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		Entries: []RosterEntry{
			{StudentID: "a", Status: "hadir"},
			{StudentID: "b", Status: ""},
		},
	}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "entries")
}

func TestRollCallRequestValidate_EntryMissingStudent(t *testing.T) {
	req := RollCallRequest{
		OccurrenceID: "01890a5d-ac96-774b-bcce-b302099a8057",
		Entries: []RosterEntry{
			{StudentID: "", Status: "hadir"},
		},
	}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "entries")
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusHadir, StatusIzin, StatusSakit, StatusAlpa} {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("bolos").IsValid())
}
