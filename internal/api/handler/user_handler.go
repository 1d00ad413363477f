package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewUserHandler(userService ports.UserService, authService ports.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

type updateProfileRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type updateUserAdminRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=EMPLOYEE MANAGER ADMIN"`
	Status     string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

// ViewProfile returns the user record for the given id.
//
// @Summary      View a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /viewProfile/{id} [get]
func (h *UserHandler) ViewProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteProfile deletes the user record for the given id.
//
// @Summary      Delete a user profile
// @Tags         users
// @Produce      plain
// @Param        id   path      int  true  "User id"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /deleteProfile/{id} [delete]
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Profile deleted successfully!")
}

// UpdateProfile applies a self-service update located by email.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {string}  string
// @Failure      404   {object}  map[string]string
// @Router       /updateProfile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.userService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "User updated successfully!")
}

// AddUser creates a user on behalf of an administrator. Same semantics as
// registration, gated by the ADMIN role at the router.
//
// @Summary      Add a user (admin)
// @Tags         admin
// @Accept       json
// @Produce      plain
// @Param        body  body      registerRequest  true  "User details"
// @Success      200   {string}  string
// @Failure      409   {object}  map[string]string
// @Router       /addUser [post]
func (h *UserHandler) AddUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return c.String(http.StatusOK, "User registered successfully")
}

// ViewAllUsers lists every user record.
//
// @Summary      List all users (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /viewAllUsers [get]
func (h *UserHandler) ViewAllUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserAdmin applies an admin-level update located by email.
//
// @Summary      Update a user (admin)
// @Tags         admin
// @Accept       json
// @Produce      plain
// @Param        body  body      updateUserAdminRequest  true  "Admin fields"
// @Success      200   {string}  string
// @Failure      404   {object}  map[string]string
// @Router       /updateUserAdmin [put]
func (h *UserHandler) UpdateUserAdmin(c echo.Context) error {
	var req updateUserAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.userService.UpdateUserAdmin(c.Request().Context(), ports.UpdateUserAdminInput{
		Email:      req.Email,
		Department: req.Department,
		Role:       domain.Role(req.Role),
		Status:     domain.Status(req.Status),
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "User updated successfully!")
}

// DeleteUserAdmin deletes any user record by id.
//
// @Summary      Delete a user (admin)
// @Tags         admin
// @Produce      plain
// @Param        id   path      int  true  "User id"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /deleteUserAdmin/{id} [delete]
func (h *UserHandler) DeleteUserAdmin(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Profile deleted successfully!")
}
