package scheduling

import "sort"

// Placement is a meeting's column slot within its overlap group: render
// at horizontal offset Index out of Total side-by-side columns. A
// meeting with Total 1 renders full width.
type Placement struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

// LayoutOptions selects between the two overlap-grouping strategies.
type LayoutOptions struct {
	// Clustered groups meetings by transitive overlap (connected
	// components), so a chain A-B-C where A and C touch only through B
	// still shares one consistent Total. When false the legacy
	// behavior applies: each meeting's Total is the size of its own
	// direct-overlap neighborhood, which can disagree across a chain.
	Clustered bool
}

// Layout assigns a column placement to every non-cancelled meeting of a
// single rendered day. Callers pre-filter the input to one day; the
// algorithm only looks at wall-clock minute intervals.
//
// Placement order inside a group is deterministic: ascending start
// time, then ascending id.
func Layout(meetings []Booking, opts LayoutOptions) map[string]Placement {
	active := make([]Booking, 0, len(meetings))
	for _, m := range meetings {
		if !m.Cancelled {
			active = append(active, m)
		}
	}

	if opts.Clustered {
		return layoutClustered(active)
	}
	return layoutNeighborhoods(active)
}

// layoutNeighborhoods computes each meeting's group from its direct
// overlaps only, reproducing the original dashboard's rendering.
func layoutNeighborhoods(meetings []Booking) map[string]Placement {
	placements := make(map[string]Placement, len(meetings))
	for _, m := range meetings {
		group := []Booking{m}
		for _, other := range meetings {
			if other.ID != m.ID && bookingsOverlap(m, other) {
				group = append(group, other)
			}
		}
		if len(group) == 1 {
			placements[m.ID] = Placement{Index: 0, Total: 1}
			continue
		}
		sortGroup(group)
		placements[m.ID] = Placement{Index: positionOf(group, m.ID), Total: len(group)}
	}
	return placements
}

// layoutClustered partitions meetings into connected components of the
// overlap graph and indexes each component as one group.
func layoutClustered(meetings []Booking) map[string]Placement {
	placements := make(map[string]Placement, len(meetings))
	assigned := make(map[string]bool, len(meetings))

	for _, seed := range meetings {
		if assigned[seed.ID] {
			continue
		}
		component := []Booking{seed}
		assigned[seed.ID] = true
		for i := 0; i < len(component); i++ {
			for _, other := range meetings {
				if !assigned[other.ID] && bookingsOverlap(component[i], other) {
					component = append(component, other)
					assigned[other.ID] = true
				}
			}
		}
		sortGroup(component)
		for idx, m := range component {
			placements[m.ID] = Placement{Index: idx, Total: len(component)}
		}
	}
	return placements
}

func bookingsOverlap(a, b Booking) bool {
	return MinuteOfDay(a.Start) < MinuteOfDay(b.End) && MinuteOfDay(b.Start) < MinuteOfDay(a.End)
}

func sortGroup(group []Booking) {
	sort.Slice(group, func(i, j int) bool {
		si, sj := MinuteOfDay(group[i].Start), MinuteOfDay(group[j].Start)
		if si != sj {
			return si < sj
		}
		return group[i].ID < group[j].ID
	})
}

func positionOf(group []Booking, id string) int {
	for i := range group {
		if group[i].ID == id {
			return i
		}
	}
	return 0
}
