// internal/server/tools.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"go.uber.org/zap"

	"github.com/zxcfer/nutrack/internal/fdc"
	"github.com/zxcfer/nutrack/internal/logger"
	"github.com/zxcfer/nutrack/internal/models"
	"github.com/zxcfer/nutrack/internal/quantity"
)

type ParseServingParams struct {
	Text string `json:"text" description:"Serving-size label text to parse, e.g. '1 1/2 cups (35g)'"`
}

type SearchFoodsParams struct {
	Query string `json:"query" description:"Search phrase or UPC for FoodData Central"`
}

type ImportFoodsParams struct {
	FDCIDs []int32 `json:"fdc_ids" description:"FoodData Central ids to fetch and persist"`
}

type GetFoodParams struct {
	FDCID int32 `json:"fdc_id" description:"FoodData Central id of an imported food"`
}

type ListFoodsParams struct {
	Limit int `json:"limit,omitempty" description:"Maximum number of foods to return"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}

	return nil
}

// handleParseServing runs the quantity parser over a label string. Parse
// failures are part of the tool's answer, not transport errors, so they come
// back in the payload with the offset and expected construct.
func (s *FoodServer) handleParseServing(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ParseServingParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if params.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	quantities, err := quantity.Parse(params.Text)
	if err != nil {
		result := map[string]interface{}{
			"input":  params.Text,
			"parsed": false,
			"error":  err.Error(),
		}
		var syntaxErr *quantity.SyntaxError
		if errors.As(err, &syntaxErr) {
			result["offset"] = syntaxErr.Offset
		}
		return s.createJSONResponse(result)
	}

	return s.createJSONResponse(map[string]interface{}{
		"input":      params.Text,
		"parsed":     true,
		"quantities": quantities,
	})
}

// handleSearchFoods passes a query through to the FDC search endpoint.
func (s *FoodServer) handleSearchFoods(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SearchFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if params.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	items, err := s.fdcClient.SearchFoods(ctx, params.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search foods: %w", err)
	}

	return s.createJSONResponse(items)
}

// handleImportFoods fetches full records by id, parses each branded record's
// household serving text, and persists everything.
func (s *FoodServer) handleImportFoods(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ImportFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if len(params.FDCIDs) == 0 {
		return nil, fmt.Errorf("fdc_ids is required")
	}

	records, err := s.fdcClient.Foods(ctx, params.FDCIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch foods: %w", err)
	}

	var imported []*models.Food
	for _, record := range records {
		food := foodFromRecord(record)

		if food.HouseholdServing != "" {
			quantities, err := quantity.Parse(food.HouseholdServing)
			if err != nil {
				// unparseable label text is expected in the wild; keep the
				// record, just without servings
				logger.Warn("could not parse household serving",
					zap.Int32("fdc_id", food.FDCID),
					zap.String("text", food.HouseholdServing),
					zap.Error(err))
			} else {
				food.Servings = servingsFromQuantities(quantities)
			}
		}

		if err := s.storage.SaveFood(food); err != nil {
			return nil, fmt.Errorf("failed to save food %d: %w", food.FDCID, err)
		}
		imported = append(imported, food)
	}

	return s.createJSONResponse(imported)
}

// handleGetFood reads one imported record from storage.
func (s *FoodServer) handleGetFood(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GetFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	food, err := s.storage.GetFood(params.FDCID)
	if err != nil {
		return nil, fmt.Errorf("failed to load food: %w", err)
	}
	if food == nil {
		return nil, fmt.Errorf("food %d has not been imported", params.FDCID)
	}

	return s.createJSONResponse(food)
}

// handleListFoods returns recently imported records.
func (s *FoodServer) handleListFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ListFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if params.Limit <= 0 {
		params.Limit = 20
	}

	foods, err := s.storage.ListFoods(params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	return s.createJSONResponse(foods)
}

// foodFromRecord flattens an FDC response record into the persisted model.
func foodFromRecord(record fdc.FoodRecord) *models.Food {
	food := &models.Food{
		DataType:   record.DataType,
		ImportedAt: time.Now().UTC(),
	}

	switch {
	case record.Branded != nil:
		b := record.Branded
		food.FDCID = b.FDCID
		food.Description = b.Description
		food.BrandOwner = b.BrandOwner
		food.BrandName = b.BrandName
		food.GtinUPC = b.GtinUPC
		food.Ingredients = b.Ingredients
		food.HouseholdServing = b.HouseholdServingFullText
		food.ServingSize = b.ServingSize
		food.ServingSizeUnit = b.ServingSizeUnit
	case record.Other != nil:
		o := record.Other
		food.FDCID = o.FDCID
		food.Description = o.Description
	}

	return food
}

func servingsFromQuantities(quantities []quantity.Quantity) []models.Serving {
	servings := make([]models.Serving, 0, len(quantities))
	for _, q := range quantities {
		serving := models.Serving{
			Kind:      q.Kind.String(),
			Magnitude: q.Magnitude,
		}
		switch q.Kind {
		case quantity.KindNominal:
			serving.Label = q.Label
		default:
			serving.Unit = q.Unit()
		}
		servings = append(servings, serving)
	}
	return servings
}
