package room

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateRoomRequest struct {
	DormitoryID string  `json:"dormitory_id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	WaliKamarID *string `json:"wali_kamar_id,omitempty"`
}

func (r *CreateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DormitoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "dormitory_id",
			Message: "dormitory_id is required",
		})
	}

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

	if r.Capacity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoomRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	WaliKamarID *string `json:"wali_kamar_id,omitempty"`
}

func (r *UpdateRoomRequest) Validate() error {
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

	if r.Capacity != nil && *r.Capacity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoomResponse struct {
	ID            string  `json:"id"`
	DormitoryID   string  `json:"dormitory_id"`
	DormitoryName *string `json:"dormitory_name,omitempty"`
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	Occupancy     *int    `json:"occupancy,omitempty"`
	WaliKamarID   *string `json:"wali_kamar_id,omitempty"`
	WaliKamarName *string `json:"wali_kamar_name,omitempty"`
}

func ToResponse(rm Room) RoomResponse {
	return RoomResponse{
		ID:            rm.ID,
		DormitoryID:   rm.DormitoryID,
		DormitoryName: rm.DormitoryName,
		Name:          rm.Name,
		Capacity:      rm.Capacity,
		Occupancy:     rm.Occupancy,
		WaliKamarID:   rm.WaliKamarID,
		WaliKamarName: rm.WaliKamarName,
	}
}
