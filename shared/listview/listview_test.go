package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plotdesk/shared/listview"
)

type record struct {
	ID   int
	Name string
	Kind string
}

func sampleRecords(n int) []record {
	records := make([]record, n)
	for i := range records {
		records[i] = record{ID: i + 1, Name: "record", Kind: "a"}
	}

	return records
}

func TestApply(t *testing.T) {
	records := []record{
		{ID: 1, Name: "Wedding Hall", Kind: "a"},
		{ID: 2, Name: "Garden Plot", Kind: "b"},
		{ID: 3, Name: "Banquet Hall", Kind: "a"},
	}

	t.Run("zero criteria matches everything", func(t *testing.T) {
		res := listview.Apply(records, listview.Criteria[record]{})

		assert.Equal(t, records, res)
	})

	t.Run("criteria are a conjunction", func(t *testing.T) {
		criteria := listview.Criteria[record]{}
		criteria.Add(func(r record) bool { return r.Kind == "a" })
		criteria.Add(func(r record) bool { return listview.TextMatch("hall", r.Name) })

		res := listview.Apply(records, criteria)

		assert.Len(t, res, 2)
		assert.Equal(t, 1, res[0].ID)
		assert.Equal(t, 3, res[1].ID)
	})

	t.Run("nil matchers are ignored", func(t *testing.T) {
		criteria := listview.Criteria[record]{}
		criteria.Add(nil)

		res := listview.Apply(records, criteria)

		assert.Equal(t, records, res)
	})

	t.Run("idempotent", func(t *testing.T) {
		criteria := listview.Criteria[record]{}
		criteria.Add(func(r record) bool { return r.Kind == "a" })

		once := listview.Apply(records, criteria)
		twice := listview.Apply(once, criteria)

		assert.Equal(t, once, twice)
	})

	t.Run("preserves source order", func(t *testing.T) {
		criteria := listview.Criteria[record]{}
		criteria.Add(func(r record) bool { return r.ID != 2 })

		res := listview.Apply(records, criteria)

		assert.Equal(t, []int{1, 3}, []int{res[0].ID, res[1].ID})
	})
}

func TestTextMatch(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term matches everything", "", []string{"anything"}, true},
		{"case folded substring", "HALL", []string{"Wedding Hall"}, true},
		{"matches any field", "garden", []string{"Wedding Hall", "Garden Plot"}, true},
		{"no match", "palace", []string{"Wedding Hall"}, false},
		{"empty fields with term", "hall", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listview.TextMatch(tt.term, tt.fields...))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		want  int
	}{
		{"empty collection has one page", 0, 10, 1},
		{"exact fit", 20, 10, 2},
		{"remainder adds a page", 21, 10, 3},
		{"single short page", 3, 10, 1},
		{"zero size falls back to one page", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listview.TotalPages(tt.count, tt.size))
		})
	}
}

func TestPaginate(t *testing.T) {
	records := sampleRecords(25)

	t.Run("concatenating pages reconstructs the collection", func(t *testing.T) {
		var rebuilt []record
		for page := 1; page <= listview.TotalPages(len(records), 10); page++ {
			rebuilt = append(rebuilt, listview.Paginate(records, page, 10)...)
		}

		assert.Equal(t, records, rebuilt)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		assert.Equal(t, listview.Paginate(records, 1, 10), listview.Paginate(records, 0, 10))
	})

	t.Run("page past the end clamps to last", func(t *testing.T) {
		last := listview.Paginate(records, 99, 10)

		assert.Len(t, last, 5)
		assert.Equal(t, 21, last[0].ID)
	})

	t.Run("empty collection yields empty page", func(t *testing.T) {
		assert.Empty(t, listview.Paginate([]record{}, 1, 10))
	})

	t.Run("zero size returns everything", func(t *testing.T) {
		assert.Equal(t, records, listview.Paginate(records, 1, 0))
	})
}
