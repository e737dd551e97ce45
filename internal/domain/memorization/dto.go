package memorization

import (
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	StudentID string  `json:"student_id"`
	Surah     string  `json:"surah"`
	SurahNo   int     `json:"surah_no"`
	AyatFrom  int     `json:"ayat_from"`
	AyatTo    int     `json:"ayat_to"`
	Juz       int     `json:"juz"`
	Grade     string  `json:"grade"`
	Date      string  `json:"date,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if validator.IsEmpty(r.Surah) {
		errs = append(errs, validator.ValidationError{
			Field:   "surah",
			Message: "surah is required",
		})
	}
	if r.SurahNo < 1 || r.SurahNo > 114 {
		errs = append(errs, validator.ValidationError{
			Field:   "surah_no",
			Message: "surah_no must be between 1 and 114",
		})
	}

	if r.AyatFrom < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "ayat_from",
			Message: "ayat_from must be at least 1",
		})
	}
	if r.AyatTo < r.AyatFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "ayat_to",
			Message: "ayat_to must not be less than ayat_from",
		})
	}

	if r.Juz < 1 || r.Juz > 30 {
		errs = append(errs, validator.ValidationError{
			Field:   "juz",
			Message: "juz must be between 1 and 30",
		})
	}

	if !validator.IsInSlice(r.Grade, []string{"lancar", "cukup", "ulang"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "grade",
			Message: "grade must be one of lancar, cukup, ulang",
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

type EntryResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Surah       string  `json:"surah"`
	SurahNo     int     `json:"surah_no"`
	AyatFrom    int     `json:"ayat_from"`
	AyatTo      int     `json:"ayat_to"`
	Juz         int     `json:"juz"`
	Grade       string  `json:"grade"`
	Date        string  `json:"date"`
	TeacherName *string `json:"teacher_name,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		StudentID:   e.StudentID,
		StudentName: e.StudentName,
		Surah:       e.Surah,
		SurahNo:     e.SurahNo,
		AyatFrom:    e.AyatFrom,
		AyatTo:      e.AyatTo,
		Juz:         e.Juz,
		Grade:       e.Grade,
		Date:        e.Date.Format("2006-01-02"),
		TeacherName: e.TeacherName,
		Note:        e.Note,
	}
}

type ProgressResponse struct {
	StudentID      string  `json:"student_id"`
	TotalEntries   int     `json:"total_entries"`
	SurahCompleted int     `json:"surah_completed"`
	JuzTouched     int     `json:"juz_touched"`
	LastSurah      *string `json:"last_surah,omitempty"`
	LastDate       *string `json:"last_date,omitempty"`
}
