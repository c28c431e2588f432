package memory

import (
	"context"
	"sync"

	"github.com/grubline/recipebox/internal/domain/recipe"
)

type RecipesRepo struct {
	mu    sync.RWMutex
	items []recipe.Recipe
}

func NewRecipesRepo() *RecipesRepo {
	return &RecipesRepo{}
}

func (r *RecipesRepo) Create(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
	rec := recipe.NewFromCreateRequest(userID, req)

	r.mu.Lock()
	r.items = append(r.items, rec)
	r.mu.Unlock()

	return rec, nil
}

func (r *RecipesRepo) ListForUser(ctx context.Context, userID string) ([]recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]recipe.Recipe, 0)

	for _, rec := range r.items {
		if rec.UserID == userID {
			output = append(output, rec)
		}
	}

	return output, nil
}
