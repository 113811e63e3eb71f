package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest covers both roles; the validated subset depends on
// user_type.
type RegisterRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=student admin"`

	// Student fields
	Name    string `json:"name"`
	RegNo   string `json:"reg_no"`
	Major   string `json:"major"`
	Contact string `json:"contact"`

	// Admin fields
	Username        string `json:"username"`
	Password        string `json:"password"`
	DepartmentToken string `json:"department_token"`
}

// LoginRequest covers both roles.
type LoginRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=student admin"`
	Name     string `json:"name"`
	RegNo    string `json:"reg_no"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken  string      `json:"token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         interface{} `json:"user,omitempty"`
}

// Register godoc
// @Summary Register a student or admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	switch req.UserType {
	case model.RoleStudent:
		if req.Name == "" || req.RegNo == "" {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "name and reg_no are required for student registration",
				Code:  "VALIDATION_ERROR",
			})
		}
		student, err := h.authService.RegisterStudent(ctx, req.Name, req.RegNo, req.Major, req.Contact)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message": "student registered successfully",
			"user":    student,
		})

	default: // admin, enforced by the oneof validation above
		if req.Username == "" || req.Password == "" || req.DepartmentToken == "" {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "username, password and department_token are required for admin registration",
				Code:  "VALIDATION_ERROR",
			})
		}
		user, err := h.authService.RegisterAdmin(ctx, req.Username, req.Password, req.DepartmentToken)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message": "admin registered successfully",
			"user":    user,
		})
	}
}

// Login godoc
// @Summary Login as student or admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	var (
		result *service.LoginResult
		err    error
	)
	if req.UserType == model.RoleStudent {
		result, err = h.authService.LoginStudent(ctx, req.Name, req.RegNo)
	} else {
		result, err = h.authService.LoginAdmin(ctx, req.Username, req.Password)
	}
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, AuthResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// httpError converts a domain error to the standard {error, code} payload.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
