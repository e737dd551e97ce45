package student

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateStudentRequest struct {
	NIS           string  `json:"nis"`
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	BirthPlace    *string `json:"birth_place,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	RoomID        *string `json:"room_id,omitempty"`
	ClassID       *string `json:"class_id,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

func (r *CreateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIS) {
		errs = append(errs, validator.ValidationError{
			Field:   "nis",
			Message: "nis is required",
		})
	} else if !validator.IsValidNIS(r.NIS) {
		errs = append(errs, validator.ValidationError{
			Field:   "nis",
			Message: "nis must be 8-12 digits",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.Gender, []string{"L", "P"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be L or P",
		})
	}

	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.GuardianPhone != nil && !validator.IsValidPhoneNumber(*r.GuardianPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_phone",
			Message: "guardian_phone must be a valid Indonesian phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStudentRequest struct {
	ID            string  `json:"id"`
	FullName      *string `json:"full_name,omitempty"`
	RoomID        *string `json:"room_id,omitempty"`
	ClassID       *string `json:"class_id,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`
}

func (r *UpdateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.GuardianPhone != nil && !validator.IsValidPhoneNumber(*r.GuardianPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_phone",
			Message: "guardian_phone must be a valid Indonesian phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StudentFilter struct {
	Search  string
	RoomID  *string
	ClassID *string
	Active  *bool
	Page    int
	Limit   int
}

type StudentResponse struct {
	ID            string  `json:"id"`
	NIS           string  `json:"nis"`
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	BirthPlace    *string `json:"birth_place,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	RoomID        *string `json:"room_id,omitempty"`
	RoomName      *string `json:"room_name,omitempty"`
	DormitoryName *string `json:"dormitory_name,omitempty"`
	ClassID       *string `json:"class_id,omitempty"`
	ClassName     *string `json:"class_name,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`
	Active        bool    `json:"active"`
}

// ToResponse converts a Student entity into its API representation.
func ToResponse(s Student) StudentResponse {
	resp := StudentResponse{
		ID:            s.ID,
		NIS:           s.NIS,
		FullName:      s.FullName,
		Gender:        s.Gender,
		BirthPlace:    s.BirthPlace,
		RoomID:        s.RoomID,
		RoomName:      s.RoomName,
		DormitoryName: s.DormitoryName,
		ClassID:       s.ClassID,
		ClassName:     s.ClassName,
		GuardianName:  s.GuardianName,
		GuardianPhone: s.GuardianPhone,
		Address:       s.Address,
		PhotoURL:      s.PhotoURL,
		Active:        s.Active,
	}
	if s.BirthDate != nil {
		birthDate := s.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birthDate
	}
	return resp
}
