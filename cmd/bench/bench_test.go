package bench

import (
	"bytes"
	"testing"

	"github.com/Kirov7/RidDB"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SortedDegenerates(t *testing.T) {
	opt := RidDB.DefaultOptions()

	sorted, err := Run(opt, 200, "sorted", 1)
	require.Nil(t, err)
	random, err := Run(opt, 200, "random", 1)
	require.Nil(t, err)

	// sorted ids build a chain, the i-th id costs i comparisons
	assert.Equal(t, 200, sorted.FindMax)
	assert.InDelta(t, 100.5, sorted.FindAvg, 0.001)
	assert.Less(t, random.FindAvg, sorted.FindAvg)

	assert.Equal(t, 21, sorted.RangeLen)
	assert.Greater(t, sorted.PrefixLen, 0)
}

func TestRun_Btree(t *testing.T) {
	opt := RidDB.DefaultOptions()
	opt.IdIndexType = RidDB.Btree
	opt.NameIndexType = RidDB.ART

	report, err := Run(opt, 500, "sorted", 2)
	require.Nil(t, err)
	assert.Less(t, report.FindAvg, 50.0)
	assert.Equal(t, "btree", report.IdIndex)
	assert.Equal(t, "art", report.NameIndex)

	out := new(bytes.Buffer)
	report.Print(out)
	assert.Contains(t, out.String(), "sorted order")
}

func TestRun_Invalid(t *testing.T) {
	_, err := Run(RidDB.DefaultOptions(), 0, "sorted", 1)
	assert.NotNil(t, err)
	_, err = Run(RidDB.DefaultOptions(), 10, "zigzag", 1)
	assert.NotNil(t, err)
}
