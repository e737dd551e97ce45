package staff

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	NIP      string  `json:"nip"`
	FullName string  `json:"full_name"`
	Gender   string  `json:"gender"`
	Position string  `json:"position"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	RoomID   *string `json:"room_id,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	} else if !validator.IsValidNIP(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip must be 8-18 digits",
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

	if !validator.IsInSlice(r.Position, []string{"ustadz", "musyrif", "wali_kamar", "admin"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of ustadz, musyrif, wali_kamar, admin",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid Indonesian phone number",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID       string  `json:"id"`
	FullName *string `json:"full_name,omitempty"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	RoomID   *string `json:"room_id,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Position != nil && !validator.IsInSlice(*r.Position, []string{"ustadz", "musyrif", "wali_kamar", "admin"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of ustadz, musyrif, wali_kamar, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffFilter struct {
	Search   string
	Position *string
	Active   *bool
	Page     int
	Limit    int
}

type StaffResponse struct {
	ID       string  `json:"id"`
	NIP      string  `json:"nip"`
	FullName string  `json:"full_name"`
	Gender   string  `json:"gender"`
	Position string  `json:"position"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	RoomID   *string `json:"room_id,omitempty"`
	RoomName *string `json:"room_name,omitempty"`
	Active   bool    `json:"active"`
}

func ToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:       s.ID,
		NIP:      s.NIP,
		FullName: s.FullName,
		Gender:   s.Gender,
		Position: s.Position,
		Phone:    s.Phone,
		Email:    s.Email,
		RoomID:   s.RoomID,
		RoomName: s.RoomName,
		Active:   s.Active,
	}
}
