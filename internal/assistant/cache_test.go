package assistant

import (
	"reflect"
	"testing"
)

func TestCache(t *testing.T) {
	cache := NewCache()

	// Test empty cache
	_, found := cache.Get("labas")
	if found {
		t.Error("Expected not found in empty cache")
	}

	// Test adding and retrieving
	cache.Add("labas", "fine")
	cache.Add("rak", []string{"you (m)"})

	translation, found := cache.Get("labas")
	if !found {
		t.Error("Expected to find 'labas' in cache")
	}
	if translation != "fine" {
		t.Errorf("Expected 'fine', got '%v'", translation)
	}

	// Test overwriting
	cache.Add("labas", "fine (greeting)")
	translation, found = cache.Get("labas")
	if !found || translation != "fine (greeting)" {
		t.Errorf("Expected 'fine (greeting)', got '%v'", translation)
	}
}

func TestCache_StoresEmptyResults(t *testing.T) {
	cache := NewCache()

	// A failed lookup is memoized too
	cache.Add("zzz", nil)

	translation, found := cache.Get("zzz")
	if !found {
		t.Error("Expected empty result to be cached")
	}
	if translation != nil {
		t.Errorf("Expected nil translation, got %v", translation)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestCache_All(t *testing.T) {
	cache := NewCache()

	cache.Add("labas", "fine")
	cache.Add("rak", "you (m)")

	all := cache.All()
	expected := map[string]any{
		"labas": "fine",
		"rak":   "you (m)",
	}
	if !reflect.DeepEqual(all, expected) {
		t.Errorf("All() = %v, want %v", all, expected)
	}

	// Test that modifying returned map doesn't affect cache
	all["labas"] = "modified"

	translation, _ := cache.Get("labas")
	if translation != "fine" {
		t.Error("Cache was modified through returned map")
	}
}
