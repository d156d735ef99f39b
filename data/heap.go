package data

// Heap The append-only record store, a slot number is the RID of the record
type Heap struct {
	records []Record
	live    int
}

func NewHeap() *Heap {
	return &Heap{records: make([]Record, 0)}
}

// Append store a copy of rec in a new slot and return its RID
func (h *Heap) Append(rec Record) int {
	rec.Deleted = false
	h.records = append(h.records, rec)
	h.live++
	return len(h.records) - 1
}

// InBounds report whether rid names an existing slot
func (h *Heap) InBounds(rid int) bool {
	return rid >= 0 && rid < len(h.records)
}

// Get return the slot at rid, tombstoned slots included
func (h *Heap) Get(rid int) (*Record, bool) {
	if !h.InBounds(rid) {
		return nil, false
	}
	return &h.records[rid], true
}

// Live return the slot at rid only when it exists and is not deleted
func (h *Heap) Live(rid int) (*Record, bool) {
	rec, ok := h.Get(rid)
	if !ok || rec.Deleted {
		return nil, false
	}
	return rec, true
}

// Tombstone flag the slot as deleted, false if it is missing or already deleted
func (h *Heap) Tombstone(rid int) bool {
	rec, ok := h.Live(rid)
	if !ok {
		return false
	}
	rec.Deleted = true
	h.live--
	return true
}

// Len the number of slots, deleted ones included
func (h *Heap) Len() int {
	return len(h.records)
}

// LiveCount the number of slots not deleted
func (h *Heap) LiveCount() int {
	return h.live
}

// ForEach visit the live slots in RID order until fn returns false
func (h *Heap) ForEach(fn func(rid int, rec Record) bool) {
	for rid := range h.records {
		if h.records[rid].Deleted {
			continue
		}
		if !fn(rid, h.records[rid]) {
			return
		}
	}
}
