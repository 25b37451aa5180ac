package ui

import (
	"testing"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

func testPosts() []api.Post {
	return []api.Post{
		{PostID: "p1", Title: "a", IsMatched: true},
		{PostID: "p2", Title: "b"},
		{PostID: "p3", Title: "c", IsMatched: true},
		{PostID: "p4", Title: "d"},
	}
}

func TestPostsState_MatchedFilterIsClientSide(t *testing.T) {
	p := newPostsState(20)
	p.loading = false
	p.items = testPosts()
	p.pagination = api.Pagination{Page: 2, Pages: 5, Total: 100}

	if got := len(p.visibleItems()); got != 4 {
		t.Fatalf("unfiltered visible = %d, want 4", got)
	}

	p.filterMatched = true
	visible := p.visibleItems()
	if len(visible) != 2 {
		t.Fatalf("filtered visible = %d, want 2", len(visible))
	}
	for _, post := range visible {
		if !post.IsMatched {
			t.Fatalf("filter leaked unmatched post %s", post.PostID)
		}
	}

	// The filter must not touch the server-side pagination totals.
	if p.pagination != (api.Pagination{Page: 2, Pages: 5, Total: 100}) {
		t.Fatalf("pagination changed by filtering: %+v", p.pagination)
	}
}

func TestPostsState_ClampSelectionAfterFilter(t *testing.T) {
	p := newPostsState(20)
	p.items = testPosts()
	p.selected = 3

	p.filterMatched = true
	p.clampSelection()
	if p.selected != 1 {
		t.Fatalf("selected = %d, want clamped to 1", p.selected)
	}

	p.items = nil
	p.clampSelection()
	if p.selected != 0 || p.window != 0 {
		t.Fatalf("empty list must reset selection, got selected=%d window=%d", p.selected, p.window)
	}
}

func TestPostsState_ScrollKeepsSelectionVisible(t *testing.T) {
	p := newPostsState(20)
	p.items = make([]api.Post, 30)

	p.selected = 12
	p.scrollTo(5)
	if p.window != 8 {
		t.Fatalf("window = %d, want 8 after scrolling down", p.window)
	}

	p.selected = 2
	p.scrollTo(5)
	if p.window != 2 {
		t.Fatalf("window = %d, want 2 after scrolling up", p.window)
	}
}

func TestGroupsState_FilterMatchesRenderedText(t *testing.T) {
	g := newGroupsState()
	g.items = []api.Group{
		{ID: "g1", Name: "Rent in Beijing", MemberCount: 120000},
		{ID: "g2", Name: "Shanghai flats", MemberCount: 4800},
	}

	g.filter.SetValue("rent")
	if got := len(g.visible()); got != 1 {
		t.Fatalf("visible = %d, want 1 name match", got)
	}

	// Member counts are part of the entry text and therefore searchable.
	g.filter.SetValue("4800")
	visible := g.visible()
	if len(visible) != 1 || visible[0].ID != "g2" {
		t.Fatalf("visible = %v, want the 4800-member group", visible)
	}

	g.filter.SetValue("")
	if got := len(g.visible()); got != 2 {
		t.Fatalf("empty filter must show everything, got %d", got)
	}
}
