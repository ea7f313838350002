package dashboard

import (
	"fmt"

	"weatherdash.app/pkg/errors"
)

// Pagination tracks which hourly group is visible. Groups are tagged 1..N in
// display order and exactly one is active. It is not safe for concurrent use;
// Dashboard guards it with its own lock.
type Pagination struct {
	groups []int
	active int
}

// NewPagination creates a controller for groupCount groups with group 1 active
func NewPagination(groupCount int) *Pagination {
	if groupCount < 1 {
		groupCount = 1
	}
	groups := make([]int, groupCount)
	for i := range groups {
		groups[i] = i + 1
	}
	return &Pagination{groups: groups}
}

// Groups returns the group tags in display order
func (p *Pagination) Groups() []int {
	return append([]int(nil), p.groups...)
}

// Active returns the tag of the active group
func (p *Pagination) Active() int {
	return p.groups[p.active]
}

// Activate makes tag the active group. It reports false when tag was already active.
func (p *Pagination) Activate(tag int) (bool, error) {
	idx := p.indexOf(tag)
	if idx < 0 {
		return false, errors.NewValidationError(fmt.Sprintf("unknown hourly group %d", tag))
	}
	if idx == p.active {
		return false, nil
	}
	p.active = idx
	return true, nil
}

// Advance moves to the adjacent group without wrapping. It reports whether the active group changed.
func (p *Pagination) Advance(direction Direction) bool {
	next := p.active
	switch direction {
	case DirectionPrevious:
		next--
	case DirectionNext:
		next++
	}
	if next < 0 || next >= len(p.groups) {
		return false
	}
	p.active = next
	return true
}

func (p *Pagination) indexOf(tag int) int {
	for i, g := range p.groups {
		if g == tag {
			return i
		}
	}
	return -1
}

// GroupForRow returns the group tag of row (0-based) when rows are split into
// contiguous groups. Group sizes differ by at most one and no group is empty
// while groups <= rows.
func GroupForRow(row, rows, groups int) int {
	if groups < 1 || rows < 1 {
		return 1
	}
	return row*groups/rows + 1
}
