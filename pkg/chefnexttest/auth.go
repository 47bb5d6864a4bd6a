package chefnexttest

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return invalidArgument(c, "email and password are required")
	}
	if req.Role != "USER_ROLE_CHEF" && req.Role != "USER_ROLE_RESTAURANT" {
		return invalidArgument(c, "role must be USER_ROLE_CHEF or USER_ROLE_RESTAURANT")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return rpcError(c, http.StatusInternalServerError, transport.CodeInternal, "failed to hash password")
	}
	user := &userRecord{
		id:           uuid.NewString(),
		email:        req.Email,
		role:         req.Role,
		passwordHash: hash,
	}
	if err := s.store.createUser(user); err != nil {
		return rpcError(c, http.StatusConflict, transport.CodeAlreadyExists, "user already exists")
	}
	return s.respondWithTokens(c, user)
}

func (s *Server) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	user, ok := s.store.userWithEmail(strings.TrimSpace(req.Email))
	if !ok {
		return unauthenticated(c, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword(user.passwordHash, []byte(req.Password)) != nil {
		return unauthenticated(c, "invalid credentials")
	}
	return s.respondWithTokens(c, user)
}

func (s *Server) refreshToken(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	userID, ok := s.store.takeRefresh(req.RefreshToken)
	if !ok {
		return unauthenticated(c, "invalid refresh token")
	}
	user, ok := s.store.userWithID(userID)
	if !ok {
		return unauthenticated(c, "invalid refresh token")
	}
	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return rpcError(c, http.StatusInternalServerError, transport.CodeInternal, "failed to issue token")
	}
	refreshToken := uuid.NewString()
	s.store.putRefresh(refreshToken, user.id)
	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (s *Server) logout(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	// Idempotent: revoking an unknown token is still a success.
	s.store.takeRefresh(req.RefreshToken)
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) getMe(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	return c.JSON(fiber.Map{
		"user_id": user.id,
		"email":   user.email,
		"role":    user.role,
	})
}

func (s *Server) respondWithTokens(c *fiber.Ctx, user *userRecord) error {
	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return rpcError(c, http.StatusInternalServerError, transport.CodeInternal, "failed to issue token")
	}
	refreshToken := uuid.NewString()
	s.store.putRefresh(refreshToken, user.id)
	return c.JSON(fiber.Map{
		"user_id":       user.id,
		"email":         user.email,
		"role":          user.role,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
