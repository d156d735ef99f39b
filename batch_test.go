package RidDB

import (
	"testing"

	"github.com/Kirov7/RidDB/data"
	"github.com/Kirov7/RidDB/public"
	"github.com/stretchr/testify/assert"
)

func TestBatch_Commit(t *testing.T) {
	engine := newTestEngine(t)
	batch := engine.NewBatch()
	assert.Nil(t, batch.Put(data.Record{Id: 2, First: "Ann", Last: "Lee"}))
	assert.Nil(t, batch.Put(data.Record{Id: 1, First: "Bo", Last: "Lee"}))
	assert.ErrorIs(t, batch.Put(data.Record{Id: 3, First: "", Last: "Lee"}), public.ErrInvalidRecord)
	assert.Equal(t, 2, batch.Len())

	// nothing is visible before commit
	assert.Equal(t, 0, engine.Len())

	n, err := batch.Commit()
	assert.Nil(t, err)
	assert.Equal(t, 2, n)
	records, _ := engine.PrefixByLast("lee")
	assert.Equal(t, []int{2, 1}, ids(records))

	_, err = batch.Commit()
	assert.ErrorIs(t, err, public.ErrBatchCommitted)
	assert.ErrorIs(t, batch.Put(data.Record{Id: 4, First: "A", Last: "B"}), public.ErrBatchCommitted)
}

func TestBatch_RejectDuplicates(t *testing.T) {
	engine := newTestEngine(t, func(o *Options) { o.DuplicatePolicy = Reject })
	_, err := engine.InsertRecord(data.Record{Id: 1, First: "Ann", Last: "Lee"})
	assert.Nil(t, err)

	// id taken by the engine
	batch := engine.NewBatch()
	assert.Nil(t, batch.Put(data.Record{Id: 2, First: "Bo", Last: "Park"}))
	assert.Nil(t, batch.Put(data.Record{Id: 1, First: "Cy", Last: "Kim"}))
	_, err = batch.Commit()
	assert.ErrorIs(t, err, public.ErrIdExists)
	assert.Equal(t, 1, engine.Len())

	// id repeated inside the batch
	batch = engine.NewBatch()
	assert.Nil(t, batch.Put(data.Record{Id: 5, First: "Bo", Last: "Park"}))
	assert.Nil(t, batch.Put(data.Record{Id: 5, First: "Cy", Last: "Kim"}))
	_, err = batch.Commit()
	assert.ErrorIs(t, err, public.ErrIdExists)
	assert.Equal(t, 1, engine.Len())
}

func TestBatch_SupersedeDuplicates(t *testing.T) {
	engine := newTestEngine(t)
	batch := engine.NewBatch()
	assert.Nil(t, batch.Put(data.Record{Id: 5, First: "Bo", Last: "Park"}))
	assert.Nil(t, batch.Put(data.Record{Id: 5, First: "Cy", Last: "Kim"}))
	n, err := batch.Commit()
	assert.Nil(t, err)
	assert.Equal(t, 2, n)

	rec, _, ok := engine.FindById(5)
	assert.True(t, ok)
	assert.Equal(t, "Kim", rec.Last)
	assert.Equal(t, 1, engine.Live())
}
