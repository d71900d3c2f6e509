package impl

import (
	"context"
	"log/slog"

	"rental/internal/domain/repository"
	"rental/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	accountRepo repository.AccountRepository
	carRepo     repository.CarRepository
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	CarRepo     repository.CarRepository
	BookingRepo repository.BookingRepository
	Logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		accountRepo: params.AccountRepo,
		carRepo:     params.CarRepo,
		bookingRepo: params.BookingRepo,
		logger:      params.Logger,
	}
}

// Stats returns marketplace-wide record counts.
func (srv *reportService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	accounts, err := srv.accountRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	cars, err := srv.carRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count cars")
	}

	bookings, err := srv.bookingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count bookings")
	}

	return &usecase.StatsOutput{
		Accounts: accounts,
		Cars:     cars,
		Bookings: bookings,
	}, nil
}
