package invite

import (
	"reflect"
	"testing"
)

func TestSplitDateSegments(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "5/5/2026", want: []string{"5", "5", "2026"}},
		{input: "5-5-2026", want: []string{"5", "5", "2026"}},
		{input: "5.5.2026", want: []string{"5", "5", "2026"}},
		{input: "5 / 5 / 2026", want: []string{"5", "5", "2026"}},
		{input: "5 May 2026", want: []string{"5 May 2026"}},
		{input: "", want: []string{""}},
	}

	for _, tc := range tests {
		got := SplitDateSegments(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitDateSegments(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestParseEventDay(t *testing.T) {
	tests := []struct {
		input string
		want  EventDay
	}{
		{input: "7th May 2025", want: EventDay{Day: "7", Month: "MAY", Year: "2025"}},
		{input: "7 May 2025", want: EventDay{Day: "7", Month: "MAY", Year: "2025"}},
		{input: "12th January 2026", want: EventDay{Day: "12", Month: "JANUARY", Year: "2026"}},
		{input: "May 2025", want: EventDay{Day: "1", Month: "MAY", Year: "2025"}},
		{input: "", want: EventDay{Day: "1", Month: "JANUARY", Year: "2025"}},
		{input: "3rd", want: EventDay{Day: "3", Month: "JANUARY", Year: "2025"}},
	}

	for _, tc := range tests {
		got := ParseEventDay(tc.input)
		if got != tc.want {
			t.Fatalf("ParseEventDay(%q): expected %+v, got %+v", tc.input, tc.want, got)
		}
	}
}
