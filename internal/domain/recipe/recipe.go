package recipe

import "time"

type Recipe struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            string `json:"user_id"`

	// used for stable list ordering, not part of the wire shape
	CreatedAt time.Time `json:"-"`
}

// MinutesToComplete binds through a pointer so a literal 0 is accepted
// while a missing or null field fails validation.
type CreateRecipeRequest struct {
	Title             string `json:"title" binding:"required"`
	Instructions      string `json:"instructions" binding:"required"`
	MinutesToComplete *int   `json:"minutes_to_complete" binding:"required,gte=0"`
}
