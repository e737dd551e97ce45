package recap

import (
	"context"
)

// Service computes attendance recaps for dashboards and printed reports.
type Service interface {
	// ComputePerformance tallies a student's attendance over a date
	// range. Results are cached briefly; recording new attendance
	// invalidates on TTL, not explicitly.
	ComputePerformance(ctx context.Context, req PerformanceRequest) (PerformanceResponse, error)

	// StudentMonthlyMatrix returns the printable month grid for a santri.
	StudentMonthlyMatrix(ctx context.Context, req MonthlyMatrixRequest) (MonthlyMatrix, error)

	// StaffMonthlyMatrix returns the month grid for a pegawai. Staff
	// rows exist only for recorded presences.
	StaffMonthlyMatrix(ctx context.Context, req MonthlyMatrixRequest) (MonthlyMatrix, error)

	// StudentMonthlyMatrixPDF renders the student matrix as a PDF.
	StudentMonthlyMatrixPDF(ctx context.Context, req MonthlyMatrixRequest) ([]byte, error)
}
