package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/api/metrics"
	"github.com/webshop/storefront-api/internal/api/middleware"
	"github.com/webshop/storefront-api/internal/core/domain"
	"github.com/webshop/storefront-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a customer account.
//
// @Summary      Register a new customer
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorBody
// @Failure      406   {object}  errorBody
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	if !middleware.IsJSON(c.Request()) {
		return domain.ErrUnsupportedContentType
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrInvalidUser), errors.Is(err, domain.ErrPasswordTooLong):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Failure      406  {object}  errorBody
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get returns the user addressed by the path.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	target, err := targetUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(target))
}

// UpdateRole changes the role of the user addressed by the path.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	target, err := targetUser(c)
	if err != nil {
		return err
	}
	if !middleware.IsJSON(c.Request()) {
		return domain.ErrUnsupportedContentType
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateRole(c.Request().Context(), target.ID, req.Role)
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("update_role").Inc()
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes the user addressed by the path and returns its last state.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	target, err := targetUser(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), target.ID)
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toUserResponse(deleted))
}

// errorBody documents the error envelope rendered by the API error handler.
type errorBody struct {
	Error string `json:"error"`
}
