package RidDB

import (
	"github.com/Kirov7/RidDB/data"
	"github.com/Kirov7/RidDB/public"
	"github.com/pkg/errors"
)

// Batch Records staged for a bulk insert
type Batch struct {
	engine    *Engine
	pending   []data.Record
	committed bool
}

func (e *Engine) NewBatch() *Batch {
	return &Batch{
		engine:  e,
		pending: make([]data.Record, 0),
	}
}

func (b *Batch) Put(rec data.Record) error {
	if b.committed {
		return public.ErrBatchCommitted
	}
	if !rec.Valid() {
		return errors.Wrapf(public.ErrInvalidRecord, "record %d", rec.Id)
	}
	b.pending = append(b.pending, rec)
	return nil
}

// Commit insert the staged records in order.
// Under Reject nothing is inserted when any id is taken or repeated in the batch.
func (b *Batch) Commit() (int, error) {
	if b.committed {
		return 0, public.ErrBatchCommitted
	}

	if b.engine.options.DuplicatePolicy == Reject {
		seen := make(map[int]struct{}, len(b.pending))
		for _, rec := range b.pending {
			if _, ok := seen[rec.Id]; ok {
				return 0, errors.Wrapf(public.ErrIdExists, "id %d repeated in batch", rec.Id)
			}
			seen[rec.Id] = struct{}{}
			if rid, ok := b.engine.index.id.Find(rec.Id); ok {
				if _, live := b.engine.heap.Live(rid); live {
					return 0, errors.Wrapf(public.ErrIdExists, "id %d", rec.Id)
				}
			}
		}
	}

	for i, rec := range b.pending {
		if _, err := b.engine.InsertRecord(rec); err != nil {
			return i, err
		}
	}
	b.committed = true
	return len(b.pending), nil
}

// Len the number of staged records
func (b *Batch) Len() int {
	return len(b.pending)
}
