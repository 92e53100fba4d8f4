// internal/fdc/types.go
package fdc

// JSON payloads returned by the FoodData Central API.

// AbridgedFoodItem is the base information every food has, as returned by
// the search endpoint.
type AbridgedFoodItem struct {
	FDCID         int32                  `json:"fdcId"`
	DataType      string                 `json:"dataType"`
	Description   string                 `json:"description"`
	FoodNutrients []AbridgedFoodNutrient `json:"foodNutrients"`
}

type AbridgedFoodNutrient struct {
	NutrientID   int32   `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float32 `json:"value"`
}

// BrandedFoodItem is the metadata only branded foods carry. The household
// serving text is the free-text input the quantity parser normalizes.
type BrandedFoodItem struct {
	FDCID                    int32           `json:"fdcId"`
	Description              string          `json:"description"`
	BrandOwner               string          `json:"brandOwner"`
	BrandName                string          `json:"brandName"`
	GtinUPC                  string          `json:"gtinUpc"`
	HouseholdServingFullText string          `json:"householdServingFullText"`
	Ingredients              string          `json:"ingredients"`
	ServingSize              float32         `json:"servingSize"`
	ServingSizeUnit          string          `json:"servingSizeUnit"`
	LabelNutrients           *LabelNutrients `json:"labelNutrients"`
}

type LabelNutrients struct {
	Fat           LabelNutrient `json:"fat"`
	SaturatedFat  LabelNutrient `json:"saturatedFat"`
	TransFat      LabelNutrient `json:"transFat"`
	Cholesterol   LabelNutrient `json:"cholesterol"`
	Sodium        LabelNutrient `json:"sodium"`
	Carbohydrates LabelNutrient `json:"carbohydrates"`
	Fiber         LabelNutrient `json:"fiber"`
	Sugars        LabelNutrient `json:"sugars"`
	Protein       LabelNutrient `json:"protein"`
	Calcium       LabelNutrient `json:"calcium"`
	Iron          LabelNutrient `json:"iron"`
	Potassium     LabelNutrient `json:"potassium"`
	Calories      LabelNutrient `json:"calories"`
}

type LabelNutrient struct {
	Value float32 `json:"value"`
}

// APFoodItem covers the non-branded data types (Foundation, Survey,
// SR Legacy), which share attribute and portion collections.
type APFoodItem struct {
	FDCID          int32           `json:"fdcId"`
	Description    string          `json:"description"`
	FoodAttributes []FoodAttribute `json:"foodAttributes"`
	FoodPortions   []FoodPortion   `json:"foodPortions"`
}

type FoodAttribute struct {
	ID                int32             `json:"id"`
	SequenceNumber    *int32            `json:"sequenceNumber"`
	Value             string            `json:"value"`
	FoodAttributeType FoodAttributeType `json:"foodAttributeType"`
}

type FoodAttributeType struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FoodPortion struct {
	ID                 int32    `json:"id"`
	Amount             *float32 `json:"amount"`
	DataPoints         *int32   `json:"dataPoints"`
	GramWeight         float32  `json:"gramWeight"`
	Modifier           *string  `json:"modifier"`
	PortionDescription *string  `json:"portionDescription"`
	SequenceNumber     *int32   `json:"sequenceNumber"`
}

// FoodRecord is one element of a /v1/foods response, discriminated on the
// dataType field: Branded is set for branded foods, Other for everything
// else.
type FoodRecord struct {
	DataType string
	Branded  *BrandedFoodItem
	Other    *APFoodItem
}
