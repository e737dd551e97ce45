package dormitory

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateDormitoryRequest struct {
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateDormitoryRequest) Validate() error {
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

	if !validator.IsInSlice(r.Gender, []string{"L", "P"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be L or P",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDormitoryRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDormitoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DormitoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Description *string `json:"description,omitempty"`
	RoomCount   *int    `json:"room_count,omitempty"`
}

func ToResponse(d Dormitory) DormitoryResponse {
	return DormitoryResponse{
		ID:          d.ID,
		Name:        d.Name,
		Gender:      d.Gender,
		Description: d.Description,
		RoomCount:   d.RoomCount,
	}
}
