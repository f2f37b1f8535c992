package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/laundrymart/laundry-backend/internal/api/metrics"
	"github.com/laundrymart/laundry-backend/internal/core/domain"
	"github.com/laundrymart/laundry-backend/internal/core/ports"
)

// ProfileCache caches profile summaries between reads. Cache failures
// are never fatal: the store remains the source of truth.
type ProfileCache interface {
	Get(ctx context.Context, username string, dest any) (bool, error)
	Set(ctx context.Context, username string, v any) error
	Invalidate(ctx context.Context, username string) error
}

type ProfileHandler struct {
	authService ports.AuthService
	cache       ProfileCache
	log         zerolog.Logger
}

func NewProfileHandler(authService ports.AuthService, cache ProfileCache, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{authService: authService, cache: cache, log: log}
}

type profileUpdateRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type profileResponse struct {
	User userSummary `json:"user"`
}

type profileUpdateResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

// Get returns the authenticated user's profile, read through the cache.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var cached userSummary
	hit, err := h.cache.Get(ctx, username, &cached)
	if err != nil {
		h.log.Warn().Err(err).Str("username", username).Msg("profile cache read failed")
	}
	if hit {
		metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, profileResponse{User: cached})
	}
	metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()

	user, err := h.authService.GetProfile(ctx, username)
	if err != nil {
		return err
	}

	summary := newUserSummary(user)
	if err := h.cache.Set(ctx, username, summary); err != nil {
		h.log.Warn().Err(err).Str("username", username).Msg("profile cache write failed")
	}
	return c.JSON(http.StatusOK, profileResponse{User: summary})
}

// Update applies a partial profile update for the authenticated user and
// invalidates the cached summary before responding.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Fields to update; blank fields are ignored"
// @Success      200   {object}  profileUpdateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	user, err := h.authService.UpdateProfile(ctx, username, ports.ProfileUpdate{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues(updateResult(err)).Inc()
		return err
	}

	if err := h.cache.Invalidate(ctx, username); err != nil {
		h.log.Warn().Err(err).Str("username", username).Msg("profile cache invalidation failed")
	}
	metrics.ProfileUpdatesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, profileUpdateResponse{
		Message: "Profile updated successfully",
		User:    newUserSummary(user),
	})
}

func updateResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailInUse):
		return "email_in_use"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}
