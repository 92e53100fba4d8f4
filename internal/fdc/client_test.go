// internal/fdc/client_test.go
package fdc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchFoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/foods/search" {
			t.Errorf("path = %s, want /v1/foods/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q, want %q", got, "test-key")
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["query"] != "Cheddar Cheese" {
			t.Errorf("query = %v, want Cheddar Cheese", body["query"])
		}
		if body["pageSize"] != float64(10) {
			t.Errorf("pageSize = %v, want 10", body["pageSize"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalHits": 1,
			"foods": [
				{
					"fdcId": 1455408,
					"dataType": "Branded",
					"description": "CHEDDAR CHEESE",
					"foodNutrients": [
						{"nutrientId": 1003, "nutrientName": "Protein", "unitName": "G", "value": 25.0}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	items, err := client.SearchFoods(context.Background(), "Cheddar Cheese")
	if err != nil {
		t.Fatalf("SearchFoods failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.FDCID != 1455408 || item.DataType != "Branded" || item.Description != "CHEDDAR CHEESE" {
		t.Errorf("unexpected item: %+v", item)
	}
	if len(item.FoodNutrients) != 1 || item.FoodNutrients[0].NutrientName != "Protein" {
		t.Errorf("unexpected nutrients: %+v", item.FoodNutrients)
	}
}

func TestFoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/foods" {
			t.Errorf("path = %s, want /v1/foods", r.URL.Path)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["format"] != "full" {
			t.Errorf("format = %v, want full", body["format"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"fdcId": 1455408,
				"dataType": "Branded",
				"description": "WESSON Canola Oil 24 FL OZ",
				"brandOwner": "Conagra",
				"gtinUpc": "00027000690260",
				"householdServingFullText": "1 Tbsp",
				"ingredients": "CANOLA OIL",
				"servingSize": 14,
				"servingSizeUnit": "g",
				"labelNutrients": {"fat": {"value": 14}, "calories": {"value": 120}}
			},
			{
				"fdcId": 329370,
				"dataType": "Foundation",
				"description": "Kale, raw",
				"foodPortions": [
					{"id": 119685, "amount": 1, "gramWeight": 21, "modifier": "cup"}
				]
			}
		]`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	records, err := client.Foods(context.Background(), []int32{1455408, 329370})
	if err != nil {
		t.Fatalf("Foods failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	branded := records[0]
	if branded.DataType != "Branded" || branded.Branded == nil || branded.Other != nil {
		t.Fatalf("first record not branded: %+v", branded)
	}
	if branded.Branded.HouseholdServingFullText != "1 Tbsp" {
		t.Errorf("household serving = %q, want %q", branded.Branded.HouseholdServingFullText, "1 Tbsp")
	}
	if branded.Branded.LabelNutrients == nil || branded.Branded.LabelNutrients.Calories.Value != 120 {
		t.Errorf("unexpected label nutrients: %+v", branded.Branded.LabelNutrients)
	}

	other := records[1]
	if other.DataType != "Foundation" || other.Other == nil || other.Branded != nil {
		t.Fatalf("second record not other: %+v", other)
	}
	if len(other.Other.FoodPortions) != 1 || other.Other.FoodPortions[0].ID != 119685 {
		t.Errorf("unexpected portions: %+v", other.Other.FoodPortions)
	}
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "api key invalid", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	if _, err := client.SearchFoods(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for 403 response")
	}
}
