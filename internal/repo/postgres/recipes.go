package postgres

import (
	"context"

	"github.com/grubline/recipebox/internal/domain/recipe"
	"github.com/grubline/recipebox/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecipesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewRecipesRepo(pool *pgxpool.Pool, prom *observability.Prom) *RecipesRepo {
	return &RecipesRepo{pool: pool, prom: prom}
}

func (r *RecipesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *RecipesRepo) Create(ctx context.Context, userID string, req recipe.CreateRecipeRequest) (recipe.Recipe, error) {
	rec := recipe.NewFromCreateRequest(userID, req)

	err := r.observe("recipes.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO recipe(id, title, instructions, minutes_to_complete, user_id, created_at)
			 VALUES($1,$2,$3,$4,$5,$6)`,
			rec.ID, rec.Title, rec.Instructions, rec.MinutesToComplete, rec.UserID, rec.CreatedAt,
		)
		return err
	})

	if err != nil {
		return recipe.Recipe{}, err
	}

	return rec, nil
}

// ListForUser returns only rows owned by userID, insertion order.
func (r *RecipesRepo) ListForUser(ctx context.Context, userID string) ([]recipe.Recipe, error) {
	output := make([]recipe.Recipe, 0)

	err := r.observe("recipes.list_for_user", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, title, instructions, minutes_to_complete, user_id, created_at
			 FROM recipe
			 WHERE user_id = $1
			 ORDER BY created_at ASC, id ASC`,
			userID,
		)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var rec recipe.Recipe

			err = rows.Scan(&rec.ID, &rec.Title, &rec.Instructions, &rec.MinutesToComplete, &rec.UserID, &rec.CreatedAt)

			if err != nil {
				return err
			}

			output = append(output, rec)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
