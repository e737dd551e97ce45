package leave

import (
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StudentID     string  `json:"student_id"`
	StartDate     string  `json:"tanggal_awal"`
	EndDate       string  `json:"tanggal_akhir"`
	DepartureTime string  `json:"jam_keluar"`
	ReturnTime    string  `json:"jam_masuk"`
	Reason        string  `json:"reason"`
	Escort        string  `json:"pamong"`
	EscortName    *string `json:"nama_pamong,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_awal",
			Message: "tanggal_awal must be in YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_akhir",
			Message: "tanggal_akhir must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal_akhir",
			Message: "tanggal_akhir must not be before tanggal_awal",
		})
	}

	if !validator.IsValidClockTime(r.DepartureTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_keluar",
			Message: "jam_keluar must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.ReturnTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_masuk",
			Message: "jam_masuk must be in HH:MM format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	escort := Escort(r.Escort)
	if !escort.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "pamong",
			Message: "pamong must be one of Orang Tua, Kerabat, Sendiri, Wali Kamar, Lainnya",
		})
	} else if escort.RequiresName() && (r.EscortName == nil || validator.IsEmpty(*r.EscortName)) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama_pamong",
			Message: "nama_pamong is required when pamong is Kerabat or Lainnya",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransitionRequest struct {
	ID    string `json:"id"`
	Event string `json:"event"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	validEvents := []string{
		string(EventSupervisorApprove),
		string(EventCoordinatorApprove),
		string(EventReturn),
		string(EventFinalize),
		string(EventOverride),
	}
	if !validator.IsInSlice(r.Event, validEvents) {
		errs = append(errs, validator.ValidationError{
			Field:   "event",
			Message: "event must be one of supervisor_approve, coordinator_approve, return, finalize, override",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	StudentID *string
	Status    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type Response struct {
	ID              string  `json:"id"`
	StudentID       string  `json:"student_id"`
	StudentName     *string `json:"student_name,omitempty"`
	StudentNIS      *string `json:"student_nis,omitempty"`
	RoomName        *string `json:"room_name,omitempty"`
	StartDate       string  `json:"tanggal_awal"`
	EndDate         string  `json:"tanggal_akhir"`
	DepartureTime   string  `json:"jam_keluar"`
	PlannedReturnAt string  `json:"jam_masuk"`
	ActualReturnAt  *string `json:"jam_kembali,omitempty"`
	Reason          string  `json:"reason"`
	Escort          string  `json:"pamong"`
	EscortName      *string `json:"nama_pamong,omitempty"`
	Status          string  `json:"status"`
}

func ToResponse(req Request) Response {
	resp := Response{
		ID:              req.ID,
		StudentID:       req.StudentID,
		StudentName:     req.StudentName,
		StudentNIS:      req.StudentNIS,
		RoomName:        req.RoomName,
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		DepartureTime:   req.DepartureTime,
		PlannedReturnAt: req.PlannedReturnAt.Format(time.RFC3339),
		Reason:          req.Reason,
		Escort:          string(req.Escort),
		EscortName:      req.EscortName,
		Status:          string(req.Status),
	}
	if req.ActualReturnAt != nil {
		actual := req.ActualReturnAt.Format(time.RFC3339)
		resp.ActualReturnAt = &actual
	}
	return resp
}
