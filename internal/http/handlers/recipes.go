package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grubline/recipebox/internal/config"
	"github.com/grubline/recipebox/internal/domain/recipe"
	"github.com/grubline/recipebox/internal/http/middlewares"
)

type RecipesStore interface {
	Create(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error)
	ListForUser(ctx context.Context, userID string) ([]recipe.Recipe, error)
}

type RecipesHandler struct {
	repo RecipesStore
}

func NewRecipesHandler(repo RecipesStore) *RecipesHandler {
	return &RecipesHandler{repo: repo}
}

// the scoping key always comes from the session gate, never the payload

func (h *RecipesHandler) ListRecipes(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Login required")
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	recipes, err := h.repo.ListForUser(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not list recipes")
		return
	}

	ctx.JSON(http.StatusOK, recipes)
}

func (h *RecipesHandler) CreateRecipe(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Login required")
		return
	}

	var req recipe.CreateRecipeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.repo.Create(cctx, userID, req)

	if err != nil {
		RespondInternal(ctx, "Could not create recipe")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
