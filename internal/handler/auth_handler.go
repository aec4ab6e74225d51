package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
	"github.com/The-boat-boat/sponsorreel/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// bearerToken extracts the bearer token from the request, "" when absent
func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}

// Login handles email/password authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	session, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidCredentials, "Invalid email or password"))
			return
		}
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found for this account"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(session))
}

// Signup handles account registration
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	session, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateAccount, "An account with this email already exists"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(session))
}

// Logout handles session invalidation
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Authorization header is required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"logged_out": true}))
}

// Me handles resolving the current user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	profile, err := h.authService.GetCurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Session is invalid or expired"))
			return
		}
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(profile))
}

// UpdateProfile handles partial profile updates
// PUT /api/v1/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Profile not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(profile))
}
