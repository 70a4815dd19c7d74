package stash

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter_Order(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2).Append("a", 1).Append("c", "x")

	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"b":2,"a":1,"c":"x"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("Marshal() = %s, want {}", got)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1).Optional("skipped", "").Optional("kept", "v")

	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"a":1,"kept":"v"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
