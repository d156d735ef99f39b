package RidDB

import (
	"context"
	"strings"

	"github.com/Kirov7/RidDB/data"
	"github.com/Kirov7/RidDB/public"
	pool "github.com/jolestar/go-commons-pool/v2"
	"go.uber.org/zap"
)

// Engine A record heap with a unique id index and a last name index.
//
// The Engine is not safe for concurrent use, callers serialize every call.
type Engine struct {
	options Options
	heap    *data.Heap
	index   *index
	logger  *zap.Logger
	luaPool *pool.ObjectPool
	// comparisons of the last query, read by scripts
	lastComparisons int
}

func NewEngine(opt Options) (*Engine, error) {
	// Verify configuration items
	if err := checkOptions(&opt); err != nil {
		return nil, err
	}

	idx, err := newIndex(opt)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		options: opt,
		heap:    data.NewHeap(),
		index:   idx,
		logger:  opt.Logger,
	}
	if opt.LuaPoolSize > 0 {
		e.initLuaPool(opt.LuaPoolSize)
	}
	return e, nil
}

// InsertRecord append rec to the heap, index it and return its id
func (e *Engine) InsertRecord(rec data.Record) (int, error) {
	if rid, ok := e.index.id.Find(rec.Id); ok {
		if _, live := e.heap.Live(rid); live {
			if e.options.DuplicatePolicy == Reject {
				return 0, public.ErrIdExists
			}
			e.supersede(rid)
		}
	}

	rid := e.heap.Append(rec)
	e.index.put(rec.Id, rec.NameKey(), rid)
	return rec.Id, nil
}

func (e *Engine) supersede(rid int) {
	old, _ := e.heap.Get(rid)
	e.heap.Tombstone(rid)
	e.index.unindexName(old.NameKey(), rid)
	e.logger.Debug("record superseded", zap.Int("id", old.Id), zap.Int("rid", rid))
}

// DeleteById tombstone the record and drop it from both indexes
func (e *Engine) DeleteById(id int) bool {
	rid, ok := e.index.id.Find(id)
	if !ok {
		return false
	}
	rec, ok := e.record("delete", rid)
	if !ok || rec.Deleted {
		return false
	}

	e.heap.Tombstone(rid)
	e.index.id.Remove(id)
	e.index.unindexName(rec.NameKey(), rid)
	e.logger.Debug("record deleted", zap.Int("id", id), zap.Int("rid", rid))
	return true
}

// FindById look the id up, also returning the comparisons the lookup took
func (e *Engine) FindById(id int) (data.Record, int, bool) {
	e.index.id.ResetMetrics()
	rid, found := e.index.id.Find(id)
	cmp := e.index.id.Comparisons()
	e.lastComparisons = cmp

	if !found {
		return data.Record{}, cmp, false
	}
	rec, ok := e.record("find", rid)
	if !ok || rec.Deleted {
		return data.Record{}, cmp, false
	}
	return *rec, cmp, true
}

// RangeById the live records with lo <= id <= hi in ascending id order
func (e *Engine) RangeById(lo, hi int) ([]data.Record, int) {
	out := make([]data.Record, 0)
	e.index.id.ResetMetrics()
	e.index.id.RangeApply(lo, hi, func(_ int, rid *int) {
		if rec, ok := e.record("range", *rid); ok && !rec.Deleted {
			out = append(out, *rec)
		}
	})
	cmp := e.index.id.Comparisons()
	e.lastComparisons = cmp
	return out, cmp
}

// PrefixByLast the live records whose last name starts with prefix, case-insensitive.
// Records come ordered by last name, then by insertion.
func (e *Engine) PrefixByLast(prefix string) ([]data.Record, int) {
	out := make([]data.Record, 0)
	low, high := prefixRange(prefix)

	e.index.last.ResetMetrics()
	e.index.last.RangeApply(low, high, func(name string, rids *[]int) {
		// the upper bound is not exact for every byte string
		if !strings.HasPrefix(name, low) {
			return
		}
		for _, rid := range *rids {
			if rec, ok := e.record("prefix", rid); ok && !rec.Deleted {
				out = append(out, *rec)
			}
		}
	})
	cmp := e.index.last.Comparisons()
	e.lastComparisons = cmp
	return out, cmp
}

// record resolve a RID read from an index, an out of bounds RID means the index and heap diverged
func (e *Engine) record(op string, rid int) (*data.Record, bool) {
	rec, ok := e.heap.Get(rid)
	if !ok {
		e.logger.Error("index points outside the heap",
			zap.String("op", op), zap.Int("rid", rid), zap.Int("heap", e.heap.Len()))
		return nil, false
	}
	return rec, true
}

// Len the number of heap slots, tombstones included
func (e *Engine) Len() int {
	return e.heap.Len()
}

// Live the number of records not deleted
func (e *Engine) Live() int {
	return e.heap.LiveCount()
}

// Options the options the engine runs with
func (e *Engine) Options() Options {
	return e.options
}

func (e *Engine) Close() error {
	if e.luaPool != nil {
		e.luaPool.Close(context.Background())
		e.luaPool = nil
	}
	return nil
}
