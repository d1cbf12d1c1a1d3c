package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumopress/user-directory/internal/api/metrics"
	"github.com/lumopress/user-directory/internal/core/ports"
)

// AdminHandler exposes the admin command gateway over HTTP.
type AdminHandler struct {
	directory ports.DirectoryService
}

func NewAdminHandler(directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// SetRole handles PUT /v1/admin/users/:uid/role.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string          true  "Account id"
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/admin/users/{uid}/role [put]
func (h *AdminHandler) SetRole(c echo.Context) error {
	actor, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.directory.SetUserRole(c.Request().Context(), actor, ports.SetUserRoleInput{
		UID:     c.Param("uid"),
		NewRole: req.NewRole,
	})
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues(req.NewRole).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}

// ToggleStatus handles PUT /v1/admin/users/:uid/status.
//
// @Summary      Enable or disable a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string               true  "Account id"
// @Param        body  body      toggleStatusRequest  true  "Disabled flag"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/admin/users/{uid}/status [put]
func (h *AdminHandler) ToggleStatus(c echo.Context) error {
	actor, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req toggleStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Disabled == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "disabled is required")
	}

	result, err := h.directory.ToggleUserStatus(c.Request().Context(), actor, ports.ToggleUserStatusInput{
		UID:      c.Param("uid"),
		Disabled: *req.Disabled,
	})
	if err != nil {
		return err
	}

	state := "enabled"
	if *req.Disabled {
		state = "disabled"
	}
	metrics.StatusTogglesTotal.WithLabelValues(state).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}

// Delete handles DELETE /v1/admin/users/:uid.
//
// @Summary      Delete a user account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users/{uid} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	actor, err := ctxAuth(c)
	if err != nil {
		return err
	}

	result, err := h.directory.DeleteUser(c.Request().Context(), actor, c.Param("uid"))
	if err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}

// List handles GET /v1/admin/users.
//
// @Summary      List all user profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) List(c echo.Context) error {
	actor, err := ctxAuth(c)
	if err != nil {
		return err
	}

	records, err := h.directory.GetAllUsers(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	users := make([]userResponse, 0, len(records))
	for _, r := range records {
		users = append(users, userResponse{
			UID:         r.UID,
			DisplayName: r.DisplayName,
			Email:       r.Email,
			AvatarURL:   r.AvatarURL,
			Role:        r.Role,
			Disabled:    r.Disabled,
			CreatedAt:   r.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}
