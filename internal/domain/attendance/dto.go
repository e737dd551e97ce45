package attendance

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordRequest struct {
	OccurrenceID string  `json:"occurrence_id"`
	StudentID    string  `json:"student_id"`
	Date         string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Status       string  `json:"status"`
	Note         *string `json:"note,omitempty"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OccurrenceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "occurrence_id",
			Message: "occurrence_id is required",
		})
	}

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of hadir, izin, sakit, alpa",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RosterEntry is one student's status inside a bulk roll call.
type RosterEntry struct {
	StudentID string  `json:"student_id"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
}

type RollCallRequest struct {
	OccurrenceID string        `json:"occurrence_id"`
	Date         string        `json:"date,omitempty"`
	Entries      []RosterEntry `json:"entries"`
}

func (r *RollCallRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OccurrenceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "occurrence_id",
			Message: "occurrence_id is required",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must not be empty",
		})
	}

	for i, entry := range r.Entries {
		if validator.IsEmpty(entry.StudentID) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "student_id is required on every entry",
			})
			break
		}
		if !Status(entry.Status).IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "status must be one of hadir, izin, sakit, alpa (entry " + validator.Itoa(i) + ")",
			})
			break
		}
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	StudentID    *string
	OccurrenceID *string
	Status       *string
	StartDate    *string
	EndDate      *string
	Page         int
	Limit        int
}

type RecordResponse struct {
	ID              string  `json:"id"`
	OccurrenceID    string  `json:"occurrence_id"`
	OccurrenceLabel *string `json:"occurrence_label,omitempty"`
	ActivityName    *string `json:"activity_name,omitempty"`
	StudentID       string  `json:"student_id"`
	StudentName     *string `json:"student_name,omitempty"`
	StudentNIS      *string `json:"student_nis,omitempty"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	Note            *string `json:"note,omitempty"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:              rec.ID,
		OccurrenceID:    rec.OccurrenceID,
		OccurrenceLabel: rec.OccurrenceLabel,
		ActivityName:    rec.ActivityName,
		StudentID:       rec.StudentID,
		StudentName:     rec.StudentName,
		StudentNIS:      rec.StudentNIS,
		Date:            rec.Date.Format("2006-01-02"),
		Status:          string(rec.Status),
		Note:            rec.Note,
	}
}

type ListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int64            `json:"total"`
}
