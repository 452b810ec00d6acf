package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/dtos"
	"github.com/mmehta29/backend/internal/services"
)

const invalidCredentialsMessage = "Invalid email or password"

type AuthHandler struct {
	AuthService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// Signup is the POST /signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	result, err := h.AuthService.Signup(c.Request.Context(), &req)
	switch {
	case errors.Is(err, services.ErrUserExists):
		respondMessage(c, http.StatusBadRequest, "User already exists")
		return
	case errors.Is(err, services.ErrPasswordTooLong):
		respondMessage(c, http.StatusBadRequest, "Password must be at most 72 bytes")
		return
	case err != nil:
		respondInternalError(c, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Message: "Signup Successful",
		Token:   result.Token,
		User:    result.User.Public(),
	})
}

// Login is the POST /login endpoint. An unknown email answers 404 and a wrong
// password 401, both with the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		respondMessage(c, http.StatusNotFound, invalidCredentialsMessage)
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	case err != nil:
		respondInternalError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, dtos.AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User.Public(),
	})
}
