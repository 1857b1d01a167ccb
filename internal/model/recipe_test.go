package model

import (
	"encoding/json"
	"testing"
)

func TestRecipe_DecodeWireFormat(t *testing.T) {
	body := `[{"Name":"Chicken Soup","Img":"a.jpg","Url":"http://x/1"}]`

	var recipes []Recipe
	if err := json.Unmarshal([]byte(body), &recipes); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(recipes) != 1 {
		t.Fatalf("Expected 1 recipe, got %d", len(recipes))
	}

	expected := Recipe{Name: "Chicken Soup", ImageURL: "a.jpg", SourceURL: "http://x/1"}
	if recipes[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, recipes[0])
	}
}

func TestRecipe_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"Chicken Soup", "http://x/1", "Chicken Soup"},
		{"", "http://x/2", "http://x/2"},
		{"", "", ""},
	}

	for _, test := range tests {
		recipe := Recipe{Name: test.name, SourceURL: test.url}
		result := recipe.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with name='%s', url='%s' = '%s', expected '%s'",
				test.name, test.url, result, test.expected)
		}
	}
}

func TestSearchState_HasResults(t *testing.T) {
	empty := SearchState{Status: SearchStatusIdle}
	if empty.HasResults() {
		t.Error("Expected empty state to have no results")
	}

	filled := SearchState{Results: []Recipe{{Name: "Soup"}}}
	if !filled.HasResults() {
		t.Error("Expected state with one recipe to have results")
	}
}
