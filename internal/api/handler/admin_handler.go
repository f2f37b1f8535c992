package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laundrymart/laundry-backend/internal/core/ports"
)

type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

type usersResponse struct {
	Users []userSummary `json:"users"`
}

// ListUsers returns every registered account. The route is gated to the
// admin role by the RequireRole middleware.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	summaries := make([]userSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, newUserSummary(&users[i]))
	}
	return c.JSON(http.StatusOK, usersResponse{Users: summaries})
}
