package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestSortByRecency_OngoingBeforeEnded(t *testing.T) {
	items := []Experience{
		{Company: "ended", StartDate: date(2024, 1, 1), EndDate: datePtr(2025, 6, 1)},
		{Company: "ongoing", StartDate: date(2020, 1, 1)},
	}

	SortByRecency(items)

	assert.Equal(t, "ongoing", items[0].Company)
	assert.Equal(t, "ended", items[1].Company)
}

func TestSortByRecency_OngoingOrderedByStartDesc(t *testing.T) {
	items := []Experience{
		{Company: "old", StartDate: date(2019, 3, 1)},
		{Company: "new", StartDate: date(2023, 9, 1)},
		{Company: "mid", StartDate: date(2021, 6, 1)},
	}

	SortByRecency(items)

	require.Len(t, items, 3)
	assert.Equal(t, "new", items[0].Company)
	assert.Equal(t, "mid", items[1].Company)
	assert.Equal(t, "old", items[2].Company)
}

func TestSortByRecency_EndedOrderedByEndDesc(t *testing.T) {
	items := []Education{
		{School: "earliest", StartDate: date(2010, 9, 1), EndDate: datePtr(2014, 6, 1)},
		{School: "latest", StartDate: date(2008, 9, 1), EndDate: datePtr(2022, 6, 1)},
		{School: "middle", StartDate: date(2014, 9, 1), EndDate: datePtr(2018, 6, 1)},
	}

	SortByRecency(items)

	assert.Equal(t, "latest", items[0].School)
	assert.Equal(t, "middle", items[1].School)
	assert.Equal(t, "earliest", items[2].School)
}

// A 2022-start ongoing entry outranks a job that ended in 2024, even though
// the ended one is more recent activity on paper.
func TestSortByRecency_OngoingWinsRegardlessOfEndDates(t *testing.T) {
	items := []Experience{
		{Company: "recent-ended", StartDate: date(2023, 1, 1), EndDate: datePtr(2024, 12, 1)},
		{Company: "older-ongoing", StartDate: date(2022, 1, 1)},
	}

	SortByRecency(items)

	assert.Equal(t, "older-ongoing", items[0].Company)
}

func TestSortByRecency_StableOnEqualDates(t *testing.T) {
	end := datePtr(2024, 6, 1)
	items := []Experience{
		{Company: "first", StartDate: date(2020, 1, 1), EndDate: end},
		{Company: "second", StartDate: date(2021, 1, 1), EndDate: end},
		{Company: "third", StartDate: date(2019, 1, 1), EndDate: end},
	}

	SortByRecency(items)

	assert.Equal(t, "first", items[0].Company)
	assert.Equal(t, "second", items[1].Company)
	assert.Equal(t, "third", items[2].Company)
}

func TestSortByRecency_Idempotent(t *testing.T) {
	items := []Experience{
		{Company: "a", StartDate: date(2024, 1, 1), EndDate: datePtr(2025, 1, 1)},
		{Company: "b", StartDate: date(2022, 1, 1)},
		{Company: "c", StartDate: date(2018, 1, 1), EndDate: datePtr(2020, 1, 1)},
		{Company: "d", StartDate: date(2023, 1, 1)},
	}

	SortByRecency(items)
	first := make([]string, len(items))
	for i, it := range items {
		first[i] = it.Company
	}

	SortByRecency(items)
	for i, it := range items {
		assert.Equal(t, first[i], it.Company)
	}
}

func TestSortByRecency_EmptyAndSingle(t *testing.T) {
	var empty []Experience
	SortByRecency(empty)
	assert.Empty(t, empty)

	single := []Experience{{Company: "only", StartDate: date(2020, 1, 1)}}
	SortByRecency(single)
	assert.Equal(t, "only", single[0].Company)
}
