package ui

import (
	"strings"
	"testing"
)

func labels(entries []pageEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.label)
	}
	return strings.Join(parts, " ")
}

func TestPaginationEntries_SinglePageRendersNothing(t *testing.T) {
	if got := paginationEntries(1, 1); got != nil {
		t.Fatalf("paginationEntries(1, 1) = %v, want nil", got)
	}
	if got := paginationEntries(1, 0); got != nil {
		t.Fatalf("paginationEntries(1, 0) = %v, want nil", got)
	}
}

func TestPaginationEntries_WindowWithGaps(t *testing.T) {
	got := labels(paginationEntries(5, 10))
	want := "Prev 1 ... 3 4 5 6 7 ... 10 Next"
	if got != want {
		t.Fatalf("paginationEntries(5, 10) = %q, want %q", got, want)
	}
}

func TestPaginationEntries_NoGapWhenWindowTouchesEdge(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		pages int
		want  string
	}{
		{"first_page", 1, 10, "Prev 1 2 3 ... 10 Next"},
		{"second_page", 2, 10, "Prev 1 2 3 4 ... 10 Next"},
		{"third_page", 3, 10, "Prev 1 2 3 4 5 ... 10 Next"},
		{"fourth_page", 4, 10, "Prev 1 2 3 4 5 6 ... 10 Next"},
		{"last_page", 10, 10, "Prev 1 ... 8 9 10 Next"},
		{"near_last", 8, 10, "Prev 1 ... 6 7 8 9 10 Next"},
		{"two_pages", 1, 2, "Prev 1 2 Next"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := labels(paginationEntries(tc.page, tc.pages))
			if got != tc.want {
				t.Fatalf("paginationEntries(%d, %d) = %q, want %q", tc.page, tc.pages, got, tc.want)
			}
		})
	}
}

func TestPaginationEntries_BoundsDisabled(t *testing.T) {
	first := paginationEntries(1, 5)
	if !first[0].disabled {
		t.Fatalf("Prev must be disabled on the first page")
	}
	if first[len(first)-1].disabled {
		t.Fatalf("Next must be enabled on the first page")
	}

	last := paginationEntries(5, 5)
	if last[0].disabled {
		t.Fatalf("Prev must be enabled on the last page")
	}
	if !last[len(last)-1].disabled {
		t.Fatalf("Next must be disabled on the last page")
	}
}

func TestPaginationEntries_CurrentPageMarked(t *testing.T) {
	entries := paginationEntries(4, 9)
	currents := 0
	for _, e := range entries {
		if e.current {
			currents++
			if e.label != "4" {
				t.Fatalf("current entry = %q, want 4", e.label)
			}
		}
	}
	if currents != 1 {
		t.Fatalf("current entries = %d, want exactly 1", currents)
	}
}
