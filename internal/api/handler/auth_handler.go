package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KiwiRant/Kitchen-database/internal/api/metrics"
	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// AuthHandler handles login and account creation.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest accepts the login handle under any of the three keys older
// frontends send.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r loginRequest) handle() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type userResponse struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Identifier: u.Identifier, Name: u.Name, Role: u.Role}
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	identifier := req.handle()
	if identifier == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identifier and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User:    toUserResponse(user),
	})
}

type addUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin staff"`
}

type addUserResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

// AddUser creates a staff account. Admin only.
//
// @Summary      Create a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "Account details"
// @Success      201   {object}  addUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/add-user [post]
func (h *AuthHandler) AddUser(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username or email is required")
	}

	user, err := h.authService.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Identifier: identifier,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, addUserResponse{Success: true, User: toUserResponse(user)})
}
