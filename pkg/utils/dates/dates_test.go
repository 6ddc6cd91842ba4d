package dates

import (
	"testing"
	"time"
)

func TestIsTimestamp_Numeric(t *testing.T) {
	if !IsTimestamp("1462356000") {
		t.Error("IsTimestamp should return true for epoch seconds")
	}
}

func TestIsTimestamp_Negative(t *testing.T) {
	if !IsTimestamp("-1") {
		t.Error("IsTimestamp should return true for negative epochs")
	}
}

func TestIsTimestamp_NonNumeric(t *testing.T) {
	if IsTimestamp("2016-05-04T10:00:00Z") {
		t.Error("IsTimestamp should return false for date strings")
	}
}

func TestIsTimestamp_OutOfRange(t *testing.T) {
	if IsTimestamp("92233720368547758080") {
		t.Error("IsTimestamp should return false beyond the integer range")
	}
}

func TestParse_EpochSeconds(t *testing.T) {
	got, err := Parse("1462356000")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := time.Unix(1462356000, 0).UTC()
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_ISO8601(t *testing.T) {
	got, err := Parse("2016-05-04T10:00:00Z")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := time.Date(2016, 5, 4, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_RFC1123(t *testing.T) {
	got, err := Parse("Wed, 04 May 2016 10:00:00 +0000")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := time.Date(2016, 5, 4, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("not a date"); err == nil {
		t.Error("Parse should return an error for unparseable input")
	}
}

// Formatting a parsed canonical date and parsing it again must be stable.
func TestParse_RoundTripStable(t *testing.T) {
	first, err := Parse("2016-05-04T10:00:00Z")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	second, err := Parse(first.UTC().Format(RSSLayout))
	if err != nil {
		t.Fatalf("Parse of formatted value returned error: %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("round trip changed the instant: %v != %v", first, second)
	}
}

func TestParseOrNow_Empty(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := ParseOrNow("")
	after := time.Now().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Errorf("ParseOrNow(\"\") = %v, want roughly now", got)
	}
}

func TestParseOrNow_Valid(t *testing.T) {
	got := ParseOrNow("2016-05-04T10:00:00Z")

	want := time.Date(2016, 5, 4, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseOrNow = %v, want %v", got, want)
	}
}
