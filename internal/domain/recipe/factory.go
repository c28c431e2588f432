package recipe

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(userID string, req CreateRecipeRequest) Recipe {
	return Recipe{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: *req.MinutesToComplete,
		UserID:            userID,
		CreatedAt:         time.Now().UTC(),
	}
}
