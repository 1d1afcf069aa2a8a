package domain

import (
	"encoding/json"
	"testing"
)

func TestOptionalTriState(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name     Optional[string] `json:"name"`
		ImageURL Optional[string] `json:"imageUrl"`
	}

	t.Run("absent field stays unset", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name":"Savings"}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Name.IsSet() || p.Name.IsNull() || p.Name.Value() != "Savings" {
			t.Fatalf("unexpected name state: %+v", p.Name)
		}
		if p.ImageURL.IsSet() {
			t.Fatal("absent field must not be set")
		}
	})

	t.Run("explicit null is distinguishable from absent", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"imageUrl":null}`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.ImageURL.IsSet() || !p.ImageURL.IsNull() {
			t.Fatalf("null field must be set and null: %+v", p.ImageURL)
		}
	})

	t.Run("constructors", func(t *testing.T) {
		some := Some("x")
		if !some.IsSet() || some.IsNull() || some.Value() != "x" {
			t.Fatalf("unexpected Some state: %+v", some)
		}

		null := Null[string]()
		if !null.IsSet() || !null.IsNull() {
			t.Fatalf("unexpected Null state: %+v", null)
		}
	})
}
