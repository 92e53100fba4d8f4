// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zxcfer/nutrack/internal/models"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS foods (
        fdc_id INTEGER PRIMARY KEY,
        data_type TEXT NOT NULL,
        description TEXT NOT NULL,
        brand_owner TEXT NOT NULL,
        brand_name TEXT NOT NULL,
        gtin_upc TEXT NOT NULL,
        ingredients TEXT NOT NULL,
        household_serving TEXT NOT NULL,
        serving_size REAL NOT NULL,
        serving_size_unit TEXT NOT NULL,
        imported_at DATETIME NOT NULL
    );

    CREATE TABLE IF NOT EXISTS servings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        fdc_id INTEGER NOT NULL,
        kind TEXT NOT NULL,
        magnitude REAL NOT NULL,
        unit TEXT NOT NULL,
        label TEXT NOT NULL,
        FOREIGN KEY (fdc_id) REFERENCES foods(fdc_id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS nutrients (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        fdc_id INTEGER NOT NULL,
        nutrient_id INTEGER NOT NULL,
        name TEXT NOT NULL,
        unit_name TEXT NOT NULL,
        value REAL NOT NULL,
        FOREIGN KEY (fdc_id) REFERENCES foods(fdc_id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_servings_fdc_id ON servings(fdc_id);
    CREATE INDEX IF NOT EXISTS idx_nutrients_fdc_id ON nutrients(fdc_id);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveFood inserts or replaces a food record along with its parsed servings
// and nutrients.
func (s *SQLiteStorage) SaveFood(food *models.Food) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	foodQuery := `
        INSERT OR REPLACE INTO foods
            (fdc_id, data_type, description, brand_owner, brand_name, gtin_upc,
             ingredients, household_serving, serving_size, serving_size_unit, imported_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err = tx.Exec(foodQuery,
		food.FDCID, food.DataType, food.Description, food.BrandOwner, food.BrandName,
		food.GtinUPC, food.Ingredients, food.HouseholdServing, food.ServingSize,
		food.ServingSizeUnit, food.ImportedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert food: %w", err)
	}

	// Replacing a food replaces its child rows too
	if _, err := tx.Exec(`DELETE FROM servings WHERE fdc_id = ?`, food.FDCID); err != nil {
		return fmt.Errorf("failed to clear servings: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM nutrients WHERE fdc_id = ?`, food.FDCID); err != nil {
		return fmt.Errorf("failed to clear nutrients: %w", err)
	}

	servingQuery := `
        INSERT INTO servings (fdc_id, kind, magnitude, unit, label)
        VALUES (?, ?, ?, ?, ?)
    `
	for _, serving := range food.Servings {
		_, err = tx.Exec(servingQuery,
			food.FDCID, serving.Kind, serving.Magnitude, serving.Unit, serving.Label)
		if err != nil {
			return fmt.Errorf("failed to insert serving: %w", err)
		}
	}

	nutrientQuery := `
        INSERT INTO nutrients (fdc_id, nutrient_id, name, unit_name, value)
        VALUES (?, ?, ?, ?, ?)
    `
	for _, nutrient := range food.Nutrients {
		_, err = tx.Exec(nutrientQuery,
			food.FDCID, nutrient.NutrientID, nutrient.Name, nutrient.UnitName, nutrient.Value)
		if err != nil {
			return fmt.Errorf("failed to insert nutrient: %w", err)
		}
	}

	return tx.Commit()
}

// GetFood loads one food record by fdc id. Returns nil without error when
// the record has not been imported.
func (s *SQLiteStorage) GetFood(fdcID int32) (*models.Food, error) {
	query := `
        SELECT fdc_id, data_type, description, brand_owner, brand_name, gtin_upc,
               ingredients, household_serving, serving_size, serving_size_unit, imported_at
        FROM foods
        WHERE fdc_id = ?
    `
	food := &models.Food{}
	var importedAtStr string
	err := s.db.QueryRow(query, fdcID).Scan(
		&food.FDCID, &food.DataType, &food.Description, &food.BrandOwner, &food.BrandName,
		&food.GtinUPC, &food.Ingredients, &food.HouseholdServing, &food.ServingSize,
		&food.ServingSizeUnit, &importedAtStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query food: %w", err)
	}

	if food.ImportedAt, err = time.Parse(time.RFC3339, importedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}

	if err := s.loadServings(food); err != nil {
		return nil, err
	}
	if err := s.loadNutrients(food); err != nil {
		return nil, err
	}
	return food, nil
}

// ListFoods returns the most recently imported food records.
func (s *SQLiteStorage) ListFoods(limit int) ([]*models.Food, error) {
	rows, err := s.db.Query(`SELECT fdc_id FROM foods ORDER BY imported_at DESC, fdc_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan food id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var foods []*models.Food
	for _, id := range ids {
		food, err := s.GetFood(id)
		if err != nil {
			return nil, err
		}
		if food != nil {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (s *SQLiteStorage) loadServings(food *models.Food) error {
	query := `
        SELECT kind, magnitude, unit, label
        FROM servings
        WHERE fdc_id = ?
        ORDER BY id
    `
	rows, err := s.db.Query(query, food.FDCID)
	if err != nil {
		return fmt.Errorf("failed to query servings: %w", err)
	}
	defer rows.Close()

	var servings []models.Serving
	for rows.Next() {
		serving := models.Serving{}
		if err := rows.Scan(&serving.Kind, &serving.Magnitude, &serving.Unit, &serving.Label); err != nil {
			return fmt.Errorf("failed to scan serving: %w", err)
		}
		servings = append(servings, serving)
	}
	food.Servings = servings
	return rows.Err()
}

func (s *SQLiteStorage) loadNutrients(food *models.Food) error {
	query := `
        SELECT nutrient_id, name, unit_name, value
        FROM nutrients
        WHERE fdc_id = ?
        ORDER BY id
    `
	rows, err := s.db.Query(query, food.FDCID)
	if err != nil {
		return fmt.Errorf("failed to query nutrients: %w", err)
	}
	defer rows.Close()

	var nutrients []models.Nutrient
	for rows.Next() {
		nutrient := models.Nutrient{}
		if err := rows.Scan(&nutrient.NutrientID, &nutrient.Name, &nutrient.UnitName, &nutrient.Value); err != nil {
			return fmt.Errorf("failed to scan nutrient: %w", err)
		}
		nutrients = append(nutrients, nutrient)
	}
	food.Nutrients = nutrients
	return rows.Err()
}
