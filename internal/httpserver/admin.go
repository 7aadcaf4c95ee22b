package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/service"
	"github.com/ekarimov/restoran/internal/tokens"
	"github.com/ekarimov/restoran/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, exp, admin, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid id card or password")
		}
		l.Error("login_failed", "status", 500, "reason", "cannot log in", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	c.SetCookie(tokens.CreateCookie("accessToken", token, "/", exp))

	l.Info("login_success", "adminID", admin.ID)
	return c.JSON(http.StatusOK, admin)
}

func (h *AdminHTTP) Logout(c echo.Context) error {
	c.SetCookie(tokens.DeleteCookie("accessToken", "/"))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AdminHTTP) ListAdmins(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_admins")

	admins, err := h.Svc.ListAdmins(ctx)
	if err != nil {
		l.Error("list_admins_failed", "status", 500, "reason", "cannot list admins", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list admins")
	}

	return c.JSON(http.StatusOK, admins)
}

func (h *AdminHTTP) GetAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_admin")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_admin_failed", "status", 400, "reason", "id is not a positive integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}

	admin, err := h.Svc.GetAdmin(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_admin_failed", "status", 404, "reason", "admin not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "admin not found")
		}
		l.Error("get_admin_failed", "status", 500, "reason", "cannot get admin", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get admin")
	}

	return c.JSON(http.StatusOK, admin)
}

func (h *AdminHTTP) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_admin")

	var req transport.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_admin_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	admin, err := h.Svc.CreateAdmin(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_admin_failed", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_admin_failed", "status", 500, "reason", "cannot create admin", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create admin")
	}

	l.Info("create_admin_success", "adminID", admin.ID)
	return c.JSON(http.StatusCreated, admin)
}

func (h *AdminHTTP) PatchAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.patch_admin")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("patch_admin_failed", "status", 400, "reason", "id is not a positive integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}

	var req transport.PatchAdminRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_admin_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	admin, err := h.Svc.PatchAdmin(ctx, uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("patch_admin_failed", "status", 404, "reason", "admin not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "admin not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("patch_admin_failed", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("patch_admin_failed", "status", 500, "reason", "cannot update admin", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update admin")
		}
	}

	l.Info("patch_admin_success", "adminID", admin.ID)
	return c.JSON(http.StatusOK, admin)
}

func (h *AdminHTTP) DeleteAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_admin")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("delete_admin_failed", "status", 400, "reason", "id is not a positive integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}

	if err := h.Svc.DeleteAdmin(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_admin_failed", "status", 404, "reason", "admin not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "admin not found")
		}
		l.Error("delete_admin_failed", "status", 500, "reason", "cannot delete admin", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete admin")
	}

	l.Info("delete_admin_success", "adminID", id)
	return c.NoContent(http.StatusNoContent)
}
