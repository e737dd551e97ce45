package activity

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateActivityRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.Category, []string{"asrama", "sekolah"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be asrama or sekolah",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateActivityRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r *UpdateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateOccurrenceRequest struct {
	ActivityID string  `json:"activity_id"`
	Label      string  `json:"label"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Weekday    *int    `json:"weekday,omitempty"`
	TeacherID  *string `json:"teacher_id,omitempty"`
}

func (r *CreateOccurrenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ActivityID) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity_id",
			Message: "activity_id is required",
		})
	}

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if len(r.Label) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label must not exceed 100 characters",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.Weekday != nil && (*r.Weekday < 0 || *r.Weekday > 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekday",
			Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActivityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

func ToResponse(a Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		Active:      a.Active,
	}
}

type OccurrenceResponse struct {
	ID           string  `json:"id"`
	ActivityID   string  `json:"activity_id"`
	ActivityName *string `json:"activity_name,omitempty"`
	Label        string  `json:"label"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Weekday      *int    `json:"weekday,omitempty"`
	TeacherID    *string `json:"teacher_id,omitempty"`
	TeacherName  *string `json:"teacher_name,omitempty"`
}

func ToOccurrenceResponse(o Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:           o.ID,
		ActivityID:   o.ActivityID,
		ActivityName: o.ActivityName,
		Label:        o.Label,
		StartTime:    o.StartTime,
		EndTime:      o.EndTime,
		Weekday:      o.Weekday,
		TeacherID:    o.TeacherID,
		TeacherName:  o.TeacherName,
	}
}
