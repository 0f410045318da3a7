package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
)

// FoodRepository is the owned food catalog: an id-keyed table of per-serving
// nutrition, queried explicitly instead of living as shared module state.
type FoodRepository struct {
	db DBTX
}

func NewFoodRepository(db DBTX) *FoodRepository {
	return &FoodRepository{db: db}
}

const foodColumns = `id, name, calories, protein, carbs, fats, fiber, sugars,
	saturated_fat, trans_fat, cholesterol, sodium, calcium, iron, potassium,
	zinc, vitamin_a, vitamin_c, vitamin_d`

func (r *FoodRepository) List(ctx context.Context, limit, offset int) ([]models.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM foods ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *FoodRepository) Search(ctx context.Context, term string, limit int) ([]models.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT $2`
	rows, err := r.db.Query(ctx, query, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *FoodRepository) GetByIDs(ctx context.Context, ids []string) ([]models.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func scanFoods(rows pgx.Rows) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	for rows.Next() {
		var food models.FoodItem
		per := &food.PerServing
		err := rows.Scan(
			&food.ID,
			&food.Name,
			&per.Calories,
			&per.Protein,
			&per.Carbs,
			&per.Fats,
			&per.Fiber,
			&per.Sugars,
			&per.SaturatedFat,
			&per.TransFat,
			&per.Cholesterol,
			&per.Sodium,
			&per.Calcium,
			&per.Iron,
			&per.Potassium,
			&per.Zinc,
			&per.VitaminA,
			&per.VitaminC,
			&per.VitaminD,
		)
		if err != nil {
			return nil, err
		}
		food.Servings = 1
		food.Nutrients = food.PerServing
		food.Nutrients.NetCarbs = food.PerServing.Carbs - food.PerServing.Fiber
		if food.Nutrients.NetCarbs < 0 {
			food.Nutrients.NetCarbs = 0
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}
