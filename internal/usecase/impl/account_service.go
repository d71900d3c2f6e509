// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/domain/service"
	"rental/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// Register creates a customer account after running the validation chain.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return srv.register(ctx, input, entity.RoleCustomer)
}

// RegisterFirstAdmin creates the bootstrap admin account. The admin-exists
// check runs before field validation so repeated probes fail cheaply; the
// storage constraint closes the remaining race between concurrent requests.
func (srv *accountService) RegisterFirstAdmin(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	adminCount, err := srv.accountRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admin accounts")
	}
	if adminCount > 0 {
		return nil, domainerrors.ErrAdminExists
	}

	return srv.register(ctx, input, entity.RoleAdmin)
}

func (srv *accountService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*usecase.AuthOutput, error) {
	if err := srv.validateRegistration(input); err != nil {
		srv.logger.Warn("Registration validation failed",
			slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound; hash outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("role", role), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	account := &entity.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: passwordHash,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if _, err := accountRepo.FindByEmail(ctx, account.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if role == entity.RoleAdmin {
			// Re-check inside the transaction; the unique index below is the backstop.
			adminCount, err := accountRepo.CountByRole(ctx, entity.RoleAdmin)
			if err != nil {
				return errors.Wrap(err, "failed to count admin accounts")
			}
			if adminCount > 0 {
				return domainerrors.ErrAdminExists
			}
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return domainerrors.ErrEmailTaken
			case errors.Is(err, repository.ErrAdminAlreadyExists):
				return domainerrors.ErrAdminExists
			default:
				return errors.Wrap(err, "failed to create account")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		srv.logger.Error("Failed to issue token after registration", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("Account registered", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return &usecase.AuthOutput{Token: token, Account: account}, nil
}

// validateRegistration runs the registration rules in a fixed order and reports
// the first failure.
func (srv *accountService) validateRegistration(input *usecase.RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Name, email, and password are required")
	}
	if len(strings.TrimSpace(input.Name)) < 2 {
		return domainerrors.ErrValidationFailed.WithMessage("Name must be at least 2 characters")
	}
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Please provide a valid email address")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrValidationFailed.WithMessage("Passwords do not match")
	}

	return nil
}

// Login verifies credentials and issues a fresh token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			// Same error as a wrong password, to resist account enumeration.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Account logged in", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, Account: account}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
