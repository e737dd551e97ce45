package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		StudentID:     "b2c6a7f0-1111-2222-3333-444455556666",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-12",
		DepartureTime: "08:00",
		ReturnTime:    "17:00",
		Reason:        "Menghadiri pernikahan kakak",
		Escort:        string(EscortOrangTua),
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestCreateRequestValidate_OK(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateRequestValidate_EndBeforeStart(t *testing.T) {
	req := validCreateRequest()
	req.StartDate = "2026-03-12"
	req.EndDate = "2026-03-10"

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "tanggal_akhir")
}

func TestCreateRequestValidate_SameDayAllowed(t *testing.T) {
	req := validCreateRequest()
	req.StartDate = "2026-03-10"
	req.EndDate = "2026-03-10"

	assert.NoError(t, req.Validate())
}

func TestCreateRequestValidate_KerabatNeedsName(t *testing.T) {
	req := validCreateRequest()
	req.Escort = string(EscortKerabat)

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "nama_pamong")

	name := "Pak Budi"
	req.EscortName = &name
	assert.NoError(t, req.Validate())
}

func TestCreateRequestValidate_UnknownEscort(t *testing.T) {
	req := validCreateRequest()
	req.Escort = "Tetangga"

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "pamong")
}

func TestCreateRequestValidate_BadClockTime(t *testing.T) {
	req := validCreateRequest()
	req.DepartureTime = "8 pagi"
	req.ReturnTime = "25:99"

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "jam_keluar")
	assert.Contains(t, details, "jam_masuk")
}

func TestCreateRequestValidate_MissingFields(t *testing.T) {
	req := CreateRequest{}

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "student_id")
	assert.Contains(t, details, "tanggal_awal")
	assert.Contains(t, details, "reason")
}

func TestTransitionRequestValidate(t *testing.T) {
	req := TransitionRequest{ID: "some-id", Event: string(EventReturn)}
	assert.NoError(t, req.Validate())

	req = TransitionRequest{}
	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "id")
	assert.Contains(t, details, "event")
}
