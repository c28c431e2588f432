package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grubline/recipebox/internal/config"
	"github.com/grubline/recipebox/internal/domain/user"
	"github.com/grubline/recipebox/internal/http/middlewares"
	"github.com/grubline/recipebox/internal/session"
)

type UserReader interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type UserWriter interface {
	Create(ctx context.Context, u user.User) (user.User, error)
}

type AuthHandler struct {
	users      UserReader
	userWriter UserWriter
	sessions   *session.Manager
	cfg        config.Config
}

func NewAuthHandler(users UserReader, userWriter UserWriter, sessions *session.Manager, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		users:      users,
		userWriter: userWriter,
		sessions:   sessions,
		cfg:        cfg,
	}
}

type SignUpRequest struct {
	Username string  `json:"username" binding:"required,max=80"`
	Password string  `json:"password" binding:"required"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=500"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var req SignUpRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	// best-effort duplicate check; the unique index is the backstop
	_, err := h.users.GetByUsername(cctx, req.Username)

	if err == nil {
		RespondUnprocessable(ctx, "username_taken", "Username already exists.", nil)
		return
	}

	if !errors.Is(err, user.ErrNotFound) {
		RespondInternal(ctx, "Could not create user")
		return
	}

	u := user.New(req.Username, req.Bio, req.ImageURL)

	if err := u.SetPassword(req.Password); err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	created, err := h.userWriter.Create(cctx, u)

	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			RespondUnprocessable(ctx, "username_taken", "Username already exists.", nil)
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"user":    created,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}
	// short timeout for DB lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	// unknown user and wrong password answer identically so the response
	// never reveals which factor failed
	foundUser, err := h.users.GetByUsername(cctx, req.Username)

	if err != nil {
		RespondUnAuthorized(ctx, "invalid_credentials", "Invalid username or password.")
		return
	}

	if !foundUser.VerifyPassword(req.Password) {
		RespondUnAuthorized(ctx, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.sessions.Login(cctx, foundUser.ID)

	if err != nil {
		RespondInternal(ctx, "Could not create session")
		return
	}

	h.setSessionCookie(ctx, token)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"user":    foundUser,
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	token, ok := middlewares.SessionTokenFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Login required")
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	err := h.sessions.Logout(cctx, token)

	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			RespondUnAuthorized(ctx, "unauthorized", "Login required")
			return
		}

		RespondInternal(ctx, "Could not log out")
		return
	}

	h.clearSessionCookie(ctx)
	ctx.Status(http.StatusNoContent)
}

// Helper functions

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, token string) {
	secure := h.cfg.Env == "prod"

	maxAge := int(h.sessions.TTL().Seconds())

	ctx.SetSameSite(http.SameSiteStrictMode)

	ctx.SetCookie(
		middlewares.SessionCookieName,
		token,
		maxAge,
		"/",
		"",
		secure,
		true, // HttpOnly.
	)
}

func (h *AuthHandler) clearSessionCookie(ctx *gin.Context) {
	secure := h.cfg.Env == "prod"
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		middlewares.SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
