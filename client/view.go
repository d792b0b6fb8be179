package client

import (
	"strings"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterHigh      Filter = "high"
	FilterMedium    Filter = "medium"
	FilterLow       Filter = "low"
)

// Filters in cycling order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted, FilterHigh, FilterMedium, FilterLow}

// View is the client-side task model: the full owned list mirroring server
// order, plus the active filter and search term. It is refreshed wholesale
// after every mutating call rather than patched in place.
type View struct {
	tasks  []core.Task
	filter Filter
	search string
}

func NewView() *View {
	return &View{filter: FilterAll}
}

func (v *View) SetTasks(tasks []core.Task) { v.tasks = tasks }
func (v *View) Tasks() []core.Task         { return v.tasks }
func (v *View) Filter() Filter             { return v.filter }
func (v *View) SetFilter(f Filter)         { v.filter = f }
func (v *View) Search() string             { return v.search }
func (v *View) SetSearch(q string)         { v.search = q }

// CycleFilter advances to the next filter and returns it.
func (v *View) CycleFilter() Filter {
	for i, f := range Filters {
		if f == v.filter {
			v.filter = Filters[(i+1)%len(Filters)]
			return v.filter
		}
	}
	v.filter = FilterAll
	return v.filter
}

func (v *View) matchesFilter(t core.Task) bool {
	switch v.filter {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterHigh, FilterMedium, FilterLow:
		// priority tiers show pending work only
		return string(t.Priority) == string(v.filter) && !t.Completed
	default:
		return true
	}
}

func (v *View) matchesSearch(t core.Task) bool {
	if v.search == "" {
		return true
	}
	q := strings.ToLower(v.search)
	return strings.Contains(strings.ToLower(t.Text), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}

// Visible applies the filter, then the search, preserving server order.
func (v *View) Visible() []core.Task {
	out := make([]core.Task, 0, len(v.tasks))
	for _, t := range v.tasks {
		if v.matchesFilter(t) && v.matchesSearch(t) {
			out = append(out, t)
		}
	}
	return out
}

type Stats struct {
	Total     int
	Completed int
	Active    int
	Percent   int
}

func (v *View) Stats() Stats {
	s := Stats{Total: len(v.tasks)}
	for _, t := range v.tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.Percent = s.Completed * 100 / s.Total
	}
	return s
}

// Move shifts the visible task at index by delta positions within the
// visible subset, then merges the result back into the full list: hidden
// tasks keep their positions, visible slots are refilled in the new
// relative order. It returns the complete id sequence to submit via
// Reorder, or false when the move is out of range or a no-op. The local
// list is updated optimistically; callers refresh from the server after
// the call lands.
func (v *View) Move(index, delta int) ([]string, bool) {
	vis := v.Visible()
	if index < 0 || index >= len(vis) {
		return nil, false
	}

	target := index + delta
	if target < 0 || target >= len(vis) || target == index {
		return nil, false
	}

	moved := vis[index]
	vis = append(vis[:index], vis[index+1:]...)
	vis = append(vis[:target], append([]core.Task{moved}, vis[target:]...)...)

	visibleIDs := make(map[string]bool, len(vis))
	for _, t := range vis {
		visibleIDs[t.ID] = true
	}

	// refill visible slots in new order, hidden tasks stay put
	merged := make([]core.Task, 0, len(v.tasks))
	next := 0
	for _, t := range v.tasks {
		if visibleIDs[t.ID] {
			merged = append(merged, vis[next])
			next++
		} else {
			merged = append(merged, t)
		}
	}
	v.tasks = merged

	ids := make([]string, 0, len(merged))
	for _, t := range merged {
		ids = append(ids, t.ID)
	}
	return ids, true
}
