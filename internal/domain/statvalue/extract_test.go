package statvalue

import "testing"

func TestExtract_MatchesNormalizedKey(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Category: "batting", Format: "odi", Label: "runs", Value: "1200"},
		{Category: " Batting ", Format: "ODI", Label: "  Strike   Rate ", Value: " 88.5 "},
	}

	if got := Extract(entries, "batting", "odi", "strike rate"); got != 88.5 {
		t.Fatalf("expected strike rate 88.5, got=%v", got)
	}
	if got := Extract(entries, "BATTING", " odi ", "Runs"); got != 1200 {
		t.Fatalf("expected runs 1200, got=%v", got)
	}
}

func TestExtract_ReturnsZeroWhenAbsent(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Category: "batting", Format: "odi", Label: "runs", Value: "1200"},
	}

	cases := []struct {
		name     string
		category string
		format   string
		label    string
	}{
		{name: "other category", category: "bowling", format: "odi", label: "runs"},
		{name: "other format", category: "batting", format: "test", label: "runs"},
		{name: "other label", category: "batting", format: "odi", label: "avg"},
	}
	for _, tc := range cases {
		if got := Extract(entries, tc.category, tc.format, tc.label); got != 0 {
			t.Fatalf("%s: expected 0, got=%v", tc.name, got)
		}
	}

	if got := Extract(nil, "batting", "odi", "runs"); got != 0 {
		t.Fatalf("expected 0 for nil entries, got=%v", got)
	}
}

func TestExtract_UnparsableValuesYieldZero(t *testing.T) {
	t.Parallel()

	values := []string{"", "   ", "-", "n/a", "NaN", "Inf", "12,000"}
	for _, value := range values {
		entries := []Entry{{Category: "bowling", Format: "t20", Label: "econ", Value: value}}
		if got := Extract(entries, "bowling", "t20", "econ"); got != 0 {
			t.Fatalf("expected 0 for value %q, got=%v", value, got)
		}
	}
}

func TestExtract_StripsInternalWhitespaceFromValue(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Category: "batting", Format: "test", Label: "100", Value: " 1 2 "}}
	if got := Extract(entries, "batting", "test", "100"); got != 12 {
		t.Fatalf("expected 12, got=%v", got)
	}
}
