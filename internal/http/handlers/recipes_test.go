package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grubline/recipebox/internal/domain/recipe"
	"github.com/grubline/recipebox/internal/http/handlers"
	"github.com/grubline/recipebox/internal/http/middlewares"
)

// Fake implementation of the handlers.RecipesStore interface

type fakeRecipesRepo struct {
	createFn func(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error)
	listFn   func(ctx context.Context, userID string) ([]recipe.Recipe, error)
}

func (f *fakeRecipesRepo) Create(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}

	return recipe.NewFromCreateRequest(userID, req), nil
}

func (f *fakeRecipesRepo) ListForUser(ctx context.Context, userID string) ([]recipe.Recipe, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}

	return []recipe.Recipe{}, nil
}

// mounts the handler behind a stub that binds the given user id, standing in
// for the session gate

func setupRecipesRouter(userID string, repo *fakeRecipesRepo) *gin.Engine {
	r := gin.New()

	bindUser := func(c *gin.Context) {
		if userID != "" {
			middlewares.SetUserID(c, userID)
		}
		c.Next()
	}

	h := handlers.NewRecipesHandler(repo)

	r.GET("/recipes", bindUser, h.ListRecipes)
	r.POST("/recipes", bindUser, h.CreateRecipe)

	return r
}

func TestCreateRecipeHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           string
		repoSetUp      func(*fakeRecipesRepo)
		wantStatusCode int
	}{
		{
			name:   "success",
			userID: "user-1",
			body:   `{"title":"Shakshuka","instructions":"Simmer the tomatoes, crack in the eggs.","minutes_to_complete":25}`,
			repoSetUp: func(f *fakeRecipesRepo) {
				f.createFn = func(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
					if userID != "user-1" {
						t.Fatalf("create scoped to %q, want user-1", userID)
					}
					return recipe.NewFromCreateRequest(userID, req), nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "zero_minutes_is_valid",
			userID:         "user-1",
			body:           `{"title":"Ice water","instructions":"Pour.","minutes_to_complete":0}`,
			repoSetUp:      func(f *fakeRecipesRepo) {},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:   "missing_minutes",
			userID: "user-1",
			body:   `{"title":"T","instructions":"I"}`,
			repoSetUp: func(f *fakeRecipesRepo) {
				f.createFn = func(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
					t.Fatalf("repo called for an invalid payload")
					return recipe.Recipe{}, nil
				}
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "empty_title",
			userID:         "user-1",
			body:           `{"title":"","instructions":"I","minutes_to_complete":5}`,
			repoSetUp:      func(f *fakeRecipesRepo) {},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing_instructions",
			userID:         "user-1",
			body:           `{"title":"T","minutes_to_complete":5}`,
			repoSetUp:      func(f *fakeRecipesRepo) {},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "no_session_user",
			userID:         "",
			body:           `{"title":"T","instructions":"I","minutes_to_complete":5}`,
			repoSetUp:      func(f *fakeRecipesRepo) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "repo_error",
			userID: "user-1",
			body:   `{"title":"T","instructions":"I","minutes_to_complete":5}`,
			repoSetUp: func(f *fakeRecipesRepo) {
				f.createFn = func(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
					return recipe.Recipe{}, errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRecipesRepo{}
			tt.repoSetUp(repo)

			r := setupRecipesRouter(tt.userID, repo)

			w := doJSON(r, http.MethodPost, "/recipes", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestListRecipesHandler(t *testing.T) {
	minutes := 10

	repo := &fakeRecipesRepo{
		listFn: func(ctx context.Context, userID string) ([]recipe.Recipe, error) {
			if userID != "user-1" {
				t.Fatalf("list scoped to %q, want user-1", userID)
			}
			return []recipe.Recipe{
				recipe.NewFromCreateRequest(userID, recipe.CreateRecipeRequest{
					Title:             "Shakshuka",
					Instructions:      "Simmer.",
					MinutesToComplete: &minutes,
				}),
			}, nil
		},
	}

	r := setupRecipesRouter("user-1", repo)

	w := doJSON(r, http.MethodGet, "/recipes", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}

	var out []recipe.Recipe

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON array: %v, body=%s", err, w.Body.String())
	}

	if len(out) != 1 || out[0].Title != "Shakshuka" || out[0].UserID != "user-1" {
		t.Fatalf("unexpected list payload: %+v", out)
	}
}

func TestListRecipesEmptyIsArray(t *testing.T) {
	r := setupRecipesRouter("user-1", &fakeRecipesRepo{})

	w := doJSON(r, http.MethodGet, "/recipes", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty list serialized as %q, want []", body)
	}
}

func TestListRecipesRepoError(t *testing.T) {
	repo := &fakeRecipesRepo{
		listFn: func(ctx context.Context, userID string) ([]recipe.Recipe, error) {
			return nil, errors.New("db error")
		},
	}

	r := setupRecipesRouter("user-1", repo)

	w := doJSON(r, http.MethodGet, "/recipes", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
