package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2025-01-05" {
		t.Errorf("Expected 2025-01-05, got %s", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{"", "not-a-date", "2025-13-01", "05-01-2025", "2025-01-05T00:00:00", "2025/01/05"}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", input, err)
			}
		})
	}
}

func TestDateOfTruncates(t *testing.T) {
	d := DateOf(time.Date(2025, 1, 5, 23, 59, 59, 0, time.UTC))
	if d.String() != "2025-01-05" {
		t.Errorf("Expected 2025-01-05, got %s", d)
	}
}

func TestDateComparisons(t *testing.T) {
	earlier, _ := ParseDate("2025-01-01")
	later, _ := ParseDate("2025-01-05")

	if !earlier.Before(later) {
		t.Error("Expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("Expected later.After(earlier)")
	}
	if !earlier.Equal(earlier) {
		t.Error("Expected date to equal itself")
	}
	if earlier.Equal(later) {
		t.Error("Distinct dates must not be equal")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2025-01-05")
	bs, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(bs) != `"2025-01-05"` {
		t.Errorf("Expected \"2025-01-05\", got %s", bs)
	}

	var back Date
	if err := json.Unmarshal(bs, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("Round trip changed date: %s != %s", back, d)
	}
}

func TestDateJSONNullAndEmpty(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("null should decode to the zero date")
	}
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("Unmarshal empty string failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("empty string should decode to the zero date")
	}
}
