package testutil

import (
	"net/http"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/port-russell/marina-service/internal/api/http"
	"github.com/port-russell/marina-service/internal/api/http/handlers"
	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/observability"
	"github.com/port-russell/marina-service/internal/service"
	"github.com/port-russell/marina-service/internal/worker"
)

// JWTSecret signs every token minted in tests.
const JWTSecret = "test-secret"

// TestServer wires the full Fiber app against in-memory repositories.
type TestServer struct {
	App      *fiber.App
	Users    *FakeUserRepo
	Catways  *FakeCatwayRepo
	Bookings *FakeBookingRepo
	Tokens   *auth.TokenManager
}

// NewTestServer builds a server whose proxy client points at an unreachable
// API; tests exercising the proxy should use NewTestServerWithAPI.
func NewTestServer(t *testing.T) *TestServer {
	return NewTestServerWithAPI(t, "http://127.0.0.1:1")
}

// NewTestServerWithAPI builds a server whose dashboard proxy targets the
// given base URL.
func NewTestServerWithAPI(t *testing.T, apiBaseURL string) *TestServer {
	t.Helper()

	logger := zap.NewNop()
	userRepo := NewFakeUserRepo()
	catwayRepo := NewFakeCatwayRepo()
	bookingRepo := NewFakeBookingRepo()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, ""))

	tokens := auth.NewTokenManager(JWTSecret, 24*60*time.Hour, 24*time.Hour)

	userService := service.NewUserService(userRepo, dispatcher, tokens, 4)
	catwayService := service.NewCatwayService(catwayRepo, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, catwayRepo, dispatcher)
	dashboardService := service.NewDashboardService(userRepo, catwayRepo, bookingRepo)
	apiClient := service.NewAPIClient(apiBaseURL, 2*time.Second)

	app := fiber.New(fiber.Config{
		Views: html.New(viewsDir(), ".html"),
	})

	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		AppName:        "marina-service",
		Version:        "test",
		Health:         handlers.NewHealthHandler("marina-service", "test", nil, nil),
		Users:          handlers.NewUsersHandler(userService, logger),
		Catways:        handlers.NewCatwaysHandler(catwayService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, bookingService, apiClient, logger),
		AuthMiddleware: auth.NewMiddleware(tokens),
	})

	return &TestServer{
		App:      app,
		Users:    userRepo,
		Catways:  catwayRepo,
		Bookings: bookingRepo,
		Tokens:   tokens,
	}
}

// SeedAccount stores a user with the given password hashed.
func (ts *TestServer) SeedAccount(t *testing.T, name, email, password string) domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return ts.Users.Seed(domain.User{Name: name, Email: email, PasswordHash: hash})
}

// LoginCookie mints a session token for the user and wraps it in the token
// cookie.
func (ts *TestServer) LoginCookie(t *testing.T, user domain.User) *http.Cookie {
	t.Helper()
	token, _, err := ts.Tokens.GenerateLoginToken(auth.UserClaim{ID: user.ID, Name: user.Name, Email: user.Email})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.TokenCookie, Value: token}
}

func viewsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "views")
}
