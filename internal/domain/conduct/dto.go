package conduct

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateViolationRequest struct {
	StudentID   string `json:"student_id"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	OccurredAt  string `json:"occurred_at,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateViolationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Weight <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weight",
			Message: "weight must be greater than zero",
		})
	}

	if r.OccurredAt != "" {
		if _, ok := validator.IsValidDate(r.OccurredAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "occurred_at",
				Message: "occurred_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateAchievementRequest struct {
	StudentID   string `json:"student_id"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	AchievedAt  string `json:"achieved_at,omitempty"`
}

func (r *CreateAchievementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Score <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be greater than zero",
		})
	}

	if r.AchievedAt != "" {
		if _, ok := validator.IsValidDate(r.AchievedAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "achieved_at",
				Message: "achieved_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ViolationResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Description string  `json:"description"`
	Weight      int     `json:"weight"`
	OccurredAt  string  `json:"occurred_at"`
}

type AchievementResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Description string  `json:"description"`
	Score       int     `json:"score"`
	AchievedAt  string  `json:"achieved_at"`
}

func ToViolationResponse(v Violation) ViolationResponse {
	return ViolationResponse{
		ID:          v.ID,
		StudentID:   v.StudentID,
		StudentName: v.StudentName,
		Description: v.Description,
		Weight:      v.Weight,
		OccurredAt:  v.OccurredAt.Format("2006-01-02"),
	}
}

func ToAchievementResponse(a Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID,
		StudentID:   a.StudentID,
		StudentName: a.StudentName,
		Description: a.Description,
		Score:       a.Score,
		AchievedAt:  a.AchievedAt.Format("2006-01-02"),
	}
}
