package schoolclass

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateSchoolClassRequest struct {
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	HomeroomID *string `json:"homeroom_id,omitempty"`
}

func (r *CreateSchoolClassRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.Level < 1 || r.Level > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSchoolClassRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Level      *int    `json:"level,omitempty"`
	HomeroomID *string `json:"homeroom_id,omitempty"`
}

func (r *UpdateSchoolClassRequest) Validate() error {
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

	if r.Level != nil && (*r.Level < 1 || *r.Level > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SchoolClassResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Level        int     `json:"level"`
	HomeroomID   *string `json:"homeroom_id,omitempty"`
	HomeroomName *string `json:"homeroom_name,omitempty"`
	StudentCount *int    `json:"student_count,omitempty"`
}

func ToResponse(c SchoolClass) SchoolClassResponse {
	return SchoolClassResponse{
		ID:           c.ID,
		Name:         c.Name,
		Level:        c.Level,
		HomeroomID:   c.HomeroomID,
		HomeroomName: c.HomeroomName,
		StudentCount: c.StudentCount,
	}
}
