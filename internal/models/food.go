// internal/models/food.go
package models

import (
	"time"
)

// Food is an imported FoodData Central record together with the serving
// quantities parsed out of its household serving text.
type Food struct {
	FDCID            int32      `json:"fdc_id"`
	DataType         string     `json:"data_type"`
	Description      string     `json:"description"`
	BrandOwner       string     `json:"brand_owner,omitempty"`
	BrandName        string     `json:"brand_name,omitempty"`
	GtinUPC          string     `json:"gtin_upc,omitempty"`
	Ingredients      string     `json:"ingredients,omitempty"`
	HouseholdServing string     `json:"household_serving,omitempty"`
	ServingSize      float32    `json:"serving_size,omitempty"`
	ServingSizeUnit  string     `json:"serving_size_unit,omitempty"`
	Servings         []Serving  `json:"servings"`
	Nutrients        []Nutrient `json:"nutrients"`
	ImportedAt       time.Time  `json:"imported_at"`
}

// Serving is one quantity parsed from the household serving text, flattened
// for persistence: kind is "volume", "mass", or "nominal"; unit holds the
// canonical unit name for physical kinds and label holds the free-text unit
// for nominal ones.
type Serving struct {
	Kind      string  `json:"kind"`
	Magnitude float32 `json:"magnitude"`
	Unit      string  `json:"unit,omitempty"`
	Label     string  `json:"label,omitempty"`
}

type Nutrient struct {
	NutrientID int32   `json:"nutrient_id"`
	Name       string  `json:"name"`
	UnitName   string  `json:"unit_name"`
	Value      float32 `json:"value"`
}
