package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
	"github.com/engiops/timesheet_mgmt_app/internal/dto"
	"github.com/engiops/timesheet_mgmt_app/internal/middleware"
	"github.com/engiops/timesheet_mgmt_app/internal/platform/config"
	"github.com/engiops/timesheet_mgmt_app/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	tokenService    portssvc.TokenSvcFacade
	cfg             *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(es portssvc.EmployeeSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		employeeService: es,
		tokenService:    ts,
		cfg:             cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Employee, services.Token, cfg)

	// 5 attempts per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(newRateLimitStore(cfg), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// newRateLimitStore returns a Redis-backed limiter store when REDIS_URL is
// configured, so limits survive restarts and are shared across instances.
// Without Redis the limits are per-process in memory.
func newRateLimitStore(cfg *config.Config) limiter.Store {
	if cfg.RedisURL == "" {
		return memory.NewStore()
	}
	opts, err := libredis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, falling back to in-memory rate limit store", slog.String("error", err.Error()))
		return memory.NewStore()
	}
	store, err := sredis.NewStoreWithOptions(libredis.NewClient(opts), limiter.StoreOptions{
		Prefix: "tms_ratelimit",
	})
	if err != nil {
		slog.Warn("Failed to create Redis rate limit store, falling back to memory", slog.String("error", err.Error()))
		return memory.NewStore()
	}
	return store
}

// setRefreshCookie stores the refresh token in an HTTP-only cookie scoped to
// the auth endpoints. The employee ID travels with the token so refresh can
// look up the stored hash without a signed access token.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, employeeID, rawToken string, expiry time.Time) {
	value := employeeID + ":" + rawToken
	maxAge := int(time.Until(expiry).Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, value, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// issueTokens generates both tokens, persists the refresh token hash and sets
// the cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, emp *domain.Employee) (string, time.Time, bool) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(ctx, emp)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return "", time.Time{}, false
	}

	rawRefresh, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, emp)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return "", time.Time{}, false
	}
	if err := h.employeeService.UpdateRefreshToken(ctx, emp.EmployeeID, utils.HashRefreshToken(rawRefresh), refreshExpiry); err != nil {
		logger.Error("Failed to persist refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return "", time.Time{}, false
	}
	h.setRefreshCookie(c, emp.EmployeeID, rawRefresh, refreshExpiry)

	return accessToken, accessExpiry, true
}

// Login godoc
// @Summary Employee login
// @Description Authenticates an employee and returns a JWT access token; the refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	employee, err := h.employeeService.AuthenticateEmployee(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	accessToken, expiresAt, ok := h.issueTokens(c, employee)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		User:      dto.ToEmployeeResponse(employee),
	})
}

// Register godoc
// @Summary Register new employee
// @Description Creates a self-service employee account with the employee role.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee code, username or email already exists"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.employeeService.RegisterEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// Refresh godoc
// @Summary Refresh access token
// @Description Rotates the refresh token cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
		return
	}
	employeeID, rawToken, found := strings.Cut(cookie, ":")
	if !found || employeeID == "" || rawToken == "" {
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Malformed refresh token"})
		return
	}

	employee, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), employeeID, rawToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err, "Failed to refresh token")
		return
	}

	accessToken, expiresAt, ok := h.issueTokens(c, employee)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{Token: accessToken, ExpiresAt: expiresAt})
}

// Logout godoc
// @Summary Log out
// @Description Clears the refresh token cookie and invalidates the stored token.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
		if employeeID, _, found := strings.Cut(cookie, ":"); found && employeeID != "" {
			if err := h.employeeService.ClearRefreshToken(c.Request.Context(), employeeID); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to clear stored refresh token", slog.String("error", err.Error()))
			}
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}
