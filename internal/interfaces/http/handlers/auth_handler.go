package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registra um novo usuário
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.authUseCase.Signup(req.Username, req.Email, req.Password); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "User registered successfully"})
}

// Login autentica um usuário e emite um token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	token, user, err := h.authUseCase.Login(req.Username, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"id":       user.UserID,
		"username": user.Username,
		"email":    user.Email,
		"token":    token,
		"type":     "Bearer",
	})
}
