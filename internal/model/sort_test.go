package model

import "testing"

func TestParseSortField(t *testing.T) {
	tests := []struct {
		input    string
		expected SortField
		wantErr  bool
	}{
		{"title", SortByTitle, false},
		{"channel", SortByChannel, false},
		{"date", SortByDate, false},
		{"description", SortByDescription, false},
		{"views", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		field, err := ParseSortField(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseSortField(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if field != test.expected {
			t.Errorf("ParseSortField(%q) = %s, expected %s", test.input, field, test.expected)
		}
	}
}

func TestSortIndicator_Arrow(t *testing.T) {
	tests := []struct {
		indicator SortIndicator
		arrow     string
		name      string
	}{
		{Unsorted, "", "unsorted"},
		{Ascending, " ↑", "ascending"},
		{Descending, " ↓", "descending"},
	}

	for _, test := range tests {
		if got := test.indicator.Arrow(); got != test.arrow {
			t.Errorf("SortIndicator(%d).Arrow() = %q, expected %q", test.indicator, got, test.arrow)
		}
		if got := test.indicator.String(); got != test.name {
			t.Errorf("SortIndicator(%d).String() = %q, expected %q", test.indicator, got, test.name)
		}
	}
}

func TestSortFields_AllValid(t *testing.T) {
	if len(SortFields) != 4 {
		t.Fatalf("Expected 4 sort fields, got %d", len(SortFields))
	}
	for _, f := range SortFields {
		if !f.IsValid() {
			t.Errorf("SortField %s should be valid", f)
		}
	}
}
