package types_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/reviewdb/internal/types"
)

// TestOptionalTriState tests that absent, null and value states are
// distinguished when decoding a partial update document.
func TestOptionalTriState(t *testing.T) {
	var doc struct {
		Name string                 `json:"name"`
		Type types.Optional[string] `json:"type"`
		City types.Optional[string] `json:"city"`
	}

	if err := json.Unmarshal([]byte(`{"name":"x","type":null}`), &doc); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !doc.Type.Present() {
		t.Error("Expected type to be present")
	}
	if !doc.Type.IsNull() {
		t.Error("Expected type to be null")
	}
	if _, ok := doc.Type.Value(); ok {
		t.Error("Expected no value for explicit null")
	}

	if doc.City.Present() {
		t.Error("Expected city to be absent")
	}
	if doc.City.IsNull() {
		t.Error("Absent field must not read as null")
	}
}

// TestOptionalValue tests the value state
func TestOptionalValue(t *testing.T) {
	var doc struct {
		Score types.Optional[int] `json:"score"`
	}
	if err := json.Unmarshal([]byte(`{"score":7}`), &doc); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	v, ok := doc.Score.Value()
	if !ok || v != 7 {
		t.Errorf("Expected score 7, got %d (ok=%v)", v, ok)
	}
}

// TestOptionalConstructors tests Some and Null
func TestOptionalConstructors(t *testing.T) {
	some := types.Some("food")
	if v, ok := some.Value(); !ok || v != "food" {
		t.Errorf("Some: unexpected value %q (ok=%v)", v, ok)
	}

	null := types.Null[string]()
	if !null.Present() || !null.IsNull() {
		t.Error("Null: expected present and null")
	}
}

// TestFlexUint64 tests decoding ids sent as numbers or strings
func TestFlexUint64(t *testing.T) {
	var doc struct {
		ID types.FlexUint64 `json:"id"`
	}

	if err := json.Unmarshal([]byte(`{"id":42}`), &doc); err != nil {
		t.Fatalf("Failed to unmarshal number id: %v", err)
	}
	if doc.ID.Uint64() != 42 {
		t.Errorf("Expected 42, got %d", doc.ID.Uint64())
	}

	if err := json.Unmarshal([]byte(`{"id":"43"}`), &doc); err != nil {
		t.Fatalf("Failed to unmarshal string id: %v", err)
	}
	if doc.ID.Uint64() != 43 {
		t.Errorf("Expected 43, got %d", doc.ID.Uint64())
	}

	if err := json.Unmarshal([]byte(`{"id":"nope"}`), &doc); err == nil {
		t.Error("Expected error for a non-numeric string id")
	}
}
