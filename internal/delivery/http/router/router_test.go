package router

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental/config"
	"rental/internal/delivery/http/middleware"
	"rental/internal/delivery/http/router/handler"
	"rental/internal/delivery/http/validator"
	"rental/internal/infra/auth"
	"rental/internal/infra/persistence/memory"
	"rental/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the full HTTP surface over the in-memory store.
func newTestServer(t *testing.T) (*echo.Echo, *memory.Store) {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:     "router-test-secret",
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
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  store.AccountRepo(),
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	bookingUC := impl.NewBookingService(impl.BookingServiceParams{
		TxManager:   txManager,
		BookingRepo: store.BookingRepo(),
		CarRepo:     store.CarRepo(),
		Logger:      logger,
	})
	fleetUC := impl.NewFleetService(impl.FleetServiceParams{
		CarRepo: store.CarRepo(),
		Logger:  logger,
	})
	reportUC := impl.NewReportService(impl.ReportServiceParams{
		AccountRepo: store.AccountRepo(),
		CarRepo:     store.CarRepo(),
		BookingRepo: store.BookingRepo(),
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(accountUC, logger),
		CarHandler:     handler.NewCarHandler(fleetUC, logger),
		BookingHandler: handler.NewBookingHandler(bookingUC, logger),
		AdminHandler:   handler.NewAdminHandler(reportUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e, store
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func doJSON(e *echo.Echo, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func registerBody(name, email string) string {
	return fmt.Sprintf(`{"name":%q,"email":%q,"password":"Sunny42day","confirmPassword":"Sunny42day"}`, name, email)
}

func registerAndToken(t *testing.T, e *echo.Echo, path, email string) string {
	t.Helper()

	rec, env := doJSON(e, http.MethodPost, path, "", registerBody("Alice Wang", email))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)

	return data.Token
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	rec, env := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestRouter_AuthFlow(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	t.Run("register returns token and user without password", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/auth/register", "", registerBody("Alice Wang", "alice@example.com"))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.NotContains(t, string(env.Data), "password")
		assert.Contains(t, string(env.Data), `"role":"customer"`)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/auth/register", "", registerBody("Alice Wang", "alice@example.com"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)
	})

	t.Run("validation failure reports the first broken rule", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/auth/register", "", `{"name":"A","email":"a@example.com","password":"Sunny42day","confirmPassword":"Sunny42day"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Name must be at least 2 characters", env.Message)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"Wrong42pass"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", env.Message)
	})

	t.Run("login then verify", func(t *testing.T) {
		_, env := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"Sunny42day"}`)
		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))

		rec, env := doJSON(e, http.MethodGet, "/auth/verify", data.Token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"valid":true`)
		assert.Contains(t, string(env.Data), `"email":"alice@example.com"`)
	})

	t.Run("verify without token", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodGet, "/auth/verify", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token provided", env.Message)
	})
}

func TestRouter_AdminBootstrap(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	registerAndToken(t, e, "/auth/register-admin", "admin@example.com")

	rec, env := doJSON(e, http.MethodPost, "/auth/register-admin", "", registerBody("Mallory Chen", "mallory@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin account already exists. Contact existing admin for access", env.Message)
}

func TestRouter_FleetAccess(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	adminToken := registerAndToken(t, e, "/auth/register-admin", "admin@example.com")
	customerToken := registerAndToken(t, e, "/auth/register", "bob@example.com")

	carBody := `{"make":"Toyota","model":"Camry","year":2021,"pricePerDay":45,"seats":5}`

	t.Run("customer cannot add cars", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodPost, "/cars", customerToken, carBody)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous write is unauthorized, not forbidden", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodPost, "/cars", "", carBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin adds a car and anyone can read it", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/cars", adminToken, carBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var car struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &car))

		rec, _ = doJSON(e, http.MethodGet, "/cars/"+car.ID, "", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(e, http.MethodGet, "/cars", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown car id", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodGet, "/cars/not-a-uuid", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Bookings(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	adminToken := registerAndToken(t, e, "/auth/register-admin", "admin@example.com")
	customerToken := registerAndToken(t, e, "/auth/register", "bob@example.com")

	_, env := doJSON(e, http.MethodPost, "/cars", adminToken, `{"make":"Tesla","model":"Model 3","year":2022,"pricePerDay":120,"seats":5}`)
	var car struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &car))

	bookingBody := fmt.Sprintf(`{"carId":%q,"pickupDate":"2026-09-10","returnDate":"2026-09-12","name":"Bob Lin","phone":"+886912345678"}`, car.ID)

	t.Run("create computes the total server-side", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodPost, "/bookings", customerToken, bookingBody)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(env.Data), `"totalPrice":240`)
	})

	t.Run("client-supplied totalPrice is ignored", func(t *testing.T) {
		tampered := fmt.Sprintf(`{"carId":%q,"pickupDate":"2026-09-10","returnDate":"2026-09-11","name":"Bob Lin","phone":"+886912345678","totalPrice":1}`, car.ID)
		rec, env := doJSON(e, http.MethodPost, "/bookings", customerToken, tampered)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"totalPrice":120`)
	})

	t.Run("reversed dates are rejected", func(t *testing.T) {
		bad := fmt.Sprintf(`{"carId":%q,"pickupDate":"2026-09-12","returnDate":"2026-09-10","name":"Bob Lin","phone":"+886912345678"}`, car.ID)
		rec, env := doJSON(e, http.MethodPost, "/bookings", customerToken, bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Return date must be after pickup date", env.Message)
	})

	t.Run("customer sees own bookings but not the global list", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodGet, "/bookings/mine", customerToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(e, http.MethodGet, "/bookings", customerToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin sees the global list", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodGet, "/bookings", adminToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AdminStats(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	adminToken := registerAndToken(t, e, "/auth/register-admin", "admin@example.com")
	customerToken := registerAndToken(t, e, "/auth/register", "bob@example.com")

	t.Run("admin gets counters", func(t *testing.T) {
		rec, env := doJSON(e, http.MethodGet, "/admin/stats", adminToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"users":2`)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		rec, _ := doJSON(e, http.MethodGet, "/admin/stats", customerToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
