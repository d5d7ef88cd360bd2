package models

import (
	"sort"
	"time"
)

// Dated is implemented by records carrying a start date and an optional end
// date, where a nil end date means "ongoing". Experience, Education and
// Project all satisfy it and share one listing order.
type Dated interface {
	Interval() (start time.Time, end *time.Time)
}

// SortByRecency orders items in place so that ongoing entries come first,
// most recently started ongoing entries before older ones, and ended entries
// follow ordered by most recent end date. The sort is stable: entries with
// equal boundary dates keep their input order.
func SortByRecency[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return datedLess(items[i], items[j])
	})
}

func datedLess(a, b Dated) bool {
	aStart, aEnd := a.Interval()
	bStart, bEnd := b.Interval()

	switch {
	case aEnd == nil && bEnd != nil:
		return true
	case aEnd != nil && bEnd == nil:
		return false
	case aEnd == nil && bEnd == nil:
		return aStart.After(bStart)
	default:
		return aEnd.After(*bEnd)
	}
}
