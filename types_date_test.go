package stash

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(1990, time.May, 7)
	d2 := NewDate(1990, time.May, 7)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"1990-05-07", NewDate(1990, time.May, 7), false},
		{"1990-5-7", NewDate(1990, time.May, 7), false},
		{"2025-12-31", NewDate(2025, time.December, 31), false},
		{"invalid-date", Date{}, true},
		{"07-05-1990", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(1990, time.May, 7)
	if got := d.String(); got != "1990-05-07" {
		t.Errorf("String() = %q, want %q", got, "1990-05-07")
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(NewDate(1990, time.May, 7))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(got) != `"1990-05-07"` {
		t.Errorf("json.Marshal() = %s, want %s", got, `"1990-05-07"`)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{
			name:     "Padded Date",
			json:     `"1990-05-07"`,
			expected: NewDate(1990, time.May, 7),
		},
		{
			name:     "Unpadded Date",
			json:     `"1990-5-7"`,
			expected: NewDate(1990, time.May, 7),
		},
		{
			name:    "Invalid Date",
			json:    `"not-a-date"`,
			wantErr: true,
		},
		{
			name:    "Not a string",
			json:    `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_BeforeAfter(t *testing.T) {
	earlier := NewDate(1990, time.May, 7)
	later := NewDate(1990, time.May, 8)

	if !earlier.Before(later) {
		t.Errorf("Before() = false, want true")
	}
	if !later.After(earlier) {
		t.Errorf("After() = false, want true")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Errorf("a date compares before or after itself")
	}
}
