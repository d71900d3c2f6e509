package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental/config"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/infra/auth"
	"rental/internal/infra/persistence/memory"
	"rental/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Secret:     "unit-test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        6,
			RequireLowercase: true,
			RequireUppercase: true,
			RequireNumbers:   true,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAccountService(t *testing.T, store *memory.Store) usecase.AccountUsecase {
	t.Helper()

	cfg := testConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAccountService(AccountServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		AccountRepo:  store.AccountRepo(),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       testLogger(),
	})
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:            "Alice Wang",
		Email:           "alice@example.com",
		Password:        "Sunny42day",
		ConfirmPassword: "Sunny42day",
	}
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates customer account and issues token", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		out, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, entity.RoleCustomer, out.Account.Role)
		assert.Equal(t, "alice@example.com", out.Account.Email)
		assert.NotEqual(t, "Sunny42day", out.Account.PasswordHash)
	})

	t.Run("lowercases the email", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		input := validRegisterInput()
		input.Email = "Alice@Example.COM"

		out, err := svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", out.Account.Email)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		_, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)

		input := validRegisterInput()
		input.Email = "ALICE@example.com" // normalized before uniqueness check
		_, err = svc.Register(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("validation order", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		tests := []struct {
			name    string
			mutate  func(*usecase.RegisterInput)
			message string
		}{
			{
				name:    "missing fields",
				mutate:  func(in *usecase.RegisterInput) { in.Email = "" },
				message: "Name, email, and password are required",
			},
			{
				name:    "short name",
				mutate:  func(in *usecase.RegisterInput) { in.Name = "A" },
				message: "Name must be at least 2 characters",
			},
			{
				name:    "bad email shape",
				mutate:  func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
				message: "Please provide a valid email address",
			},
			{
				name: "short password",
				mutate: func(in *usecase.RegisterInput) {
					in.Password = "Ab1"
					in.ConfirmPassword = "Ab1"
				},
				message: "Password must be at least 6 characters",
			},
			{
				name: "no lowercase",
				mutate: func(in *usecase.RegisterInput) {
					in.Password = "SUNNY42DAY"
					in.ConfirmPassword = "SUNNY42DAY"
				},
				message: "Password must contain lowercase letters",
			},
			{
				name: "no uppercase",
				mutate: func(in *usecase.RegisterInput) {
					in.Password = "sunny42day"
					in.ConfirmPassword = "sunny42day"
				},
				message: "Password must contain uppercase letters",
			},
			{
				name: "no digits",
				mutate: func(in *usecase.RegisterInput) {
					in.Password = "SunnyFunDay"
					in.ConfirmPassword = "SunnyFunDay"
				},
				message: "Password must contain numbers",
			},
			{
				name:    "confirmation mismatch",
				mutate:  func(in *usecase.RegisterInput) { in.ConfirmPassword = "Sunny42night" },
				message: "Passwords do not match",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validRegisterInput()
				tt.mutate(input)

				_, err := svc.Register(ctx, input)
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.message, appErr.Message())
			})
		}
	})
}

func TestAccountService_RegisterFirstAdmin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates the bootstrap admin", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		out, err := svc.RegisterFirstAdmin(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.Account.Role)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("refuses a second admin before validating fields", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		_, err := svc.RegisterFirstAdmin(ctx, validRegisterInput())
		require.NoError(t, err)

		// Even an otherwise invalid request must hit the admin gate first.
		_, err = svc.RegisterFirstAdmin(ctx, &usecase.RegisterInput{})
		assert.ErrorIs(t, err, domainerrors.ErrAdminExists)
	})

	t.Run("customer accounts do not block the admin slot", func(t *testing.T) {
		t.Parallel()

		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		_, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)

		input := validRegisterInput()
		input.Email = "admin@example.com"
		out, err := svc.RegisterFirstAdmin(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.Account.Role)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	setup := func(t *testing.T) (usecase.AccountUsecase, *memory.Store) {
		store := memory.NewStore()
		svc := newTestAccountService(t, store)

		_, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)

		return svc, store
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)

		out, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Sunny42day"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "alice@example.com", out.Account.Email)
	})

	t.Run("accepts mixed-case email", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ALICE@Example.com", Password: "Sunny42day"})
		assert.NoError(t, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)

		_, errUnknown := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Sunny42day"})
		_, errWrong := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong42Pass"})

		require.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
