package usecase

import "context"

// StatsOutput carries the marketplace-wide record counts for the admin dashboard.
type StatsOutput struct {
	Accounts int64 `json:"users"`
	Cars     int64 `json:"cars"`
	Bookings int64 `json:"bookings"`
}

// ReportUsecase exposes admin reporting. Admin-gated at the delivery layer.
type ReportUsecase interface {
	Stats(ctx context.Context) (*StatsOutput, error)
}
