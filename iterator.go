package RidDB

import (
	"github.com/Kirov7/RidDB/data"
)

// prefixRange the lowercase prefix and a bound above every lowercase name starting with it
func prefixRange(prefix string) (string, string) {
	low := data.NameKey(prefix)
	return low, low + prefixSentinel
}

// Scan visit the live records in RID order until fn returns false
func (e *Engine) Scan(fn func(rid int, rec data.Record) bool) {
	e.heap.ForEach(fn)
}

// Records the live records in RID order
func (e *Engine) Records() []data.Record {
	records := make([]data.Record, 0, e.heap.LiveCount())
	e.Scan(func(_ int, rec data.Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}
