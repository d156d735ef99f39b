package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeap_AppendTombstone(t *testing.T) {
	h := NewHeap()
	assert.Equal(t, 0, h.Len())

	rid := h.Append(Record{Id: 7, First: "Ann", Last: "Lee", Deleted: true})
	assert.Equal(t, 0, rid)
	assert.Equal(t, 1, h.Append(Record{Id: 8, First: "Bo", Last: "Park"}))

	rec, ok := h.Live(0)
	assert.True(t, ok)
	assert.False(t, rec.Deleted)
	assert.Equal(t, 2, h.LiveCount())

	assert.True(t, h.Tombstone(0))
	assert.False(t, h.Tombstone(0))
	assert.False(t, h.Tombstone(5))

	_, ok = h.Live(0)
	assert.False(t, ok)
	// the slot is kept
	rec, ok = h.Get(0)
	assert.True(t, ok)
	assert.True(t, rec.Deleted)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.LiveCount())

	// RIDs are never reused
	assert.Equal(t, 2, h.Append(Record{Id: 7, First: "Ann", Last: "Lee"}))

	_, ok = h.Get(-1)
	assert.False(t, ok)
	_, ok = h.Get(3)
	assert.False(t, ok)

	rids := make([]int, 0)
	h.ForEach(func(rid int, rec Record) bool {
		rids = append(rids, rid)
		return true
	})
	assert.Equal(t, []int{1, 2}, rids)
}

func TestRecord_NameKey(t *testing.T) {
	rec := Record{Id: 1, First: "Ann", Last: "McLee"}
	assert.Equal(t, "mclee", rec.NameKey())
	assert.True(t, rec.Valid())
	assert.False(t, (&Record{Id: 1, Last: "Lee"}).Valid())
}
