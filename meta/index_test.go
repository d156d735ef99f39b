package meta

import (
	"sort"
	"strings"
	"testing"

	"github.com/Kirov7/RidDB/public"
	"github.com/Kirov7/RidDB/public/utils/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameIndexTypes = []IndexType{BST, Btree, ART}

func TestNewIdIndex(t *testing.T) {
	for _, typ := range []IndexType{BST, Btree} {
		idx, err := NewIdIndex(typ, 4)
		assert.Nil(t, err)
		assert.NotNil(t, idx)
	}
	_, err := NewIdIndex(ART, 4)
	assert.ErrorIs(t, err, public.ErrInvalidIndexType)
}

func TestIndex_Backends(t *testing.T) {
	id, err := NewIdIndex(BST, 0)
	require.Nil(t, err)
	assert.IsType(t, &BinarySearchTree[int, int]{}, id)

	id, err = NewIdIndex(Btree, 0)
	require.Nil(t, err)
	assert.IsType(t, &BTree[int, int]{}, id)

	name, err := NewNameIndex(BST, 0)
	require.Nil(t, err)
	assert.IsType(t, &BinarySearchTree[string, []int]{}, name)

	name, err = NewNameIndex(ART, 0)
	require.Nil(t, err)
	assert.IsType(t, &AdaptiveRadixTree[[]int]{}, name)
}

func TestIndex_NameUpsertAndRemove(t *testing.T) {
	for _, typ := range nameIndexTypes {
		t.Run(IndexTypeName(typ), func(t *testing.T) {
			idx, err := NewNameIndex(typ, 2)
			require.Nil(t, err)

			idx.Insert("lee", []int{0})
			idx.Insert("leeds", []int{1})
			idx.Insert("le", []int{2})
			idx.Insert("park", []int{3})
			assert.Equal(t, 4, idx.Len())

			idx.Insert("lee", []int{4})
			assert.Equal(t, 4, idx.Len())
			v, ok := idx.Find("lee")
			assert.True(t, ok)
			assert.Equal(t, []int{4}, v)

			ref, ok := idx.Ref("park")
			require.True(t, ok)
			*ref = append(*ref, 5)
			v, _ = idx.Find("park")
			assert.Equal(t, []int{3, 5}, v)

			assert.True(t, idx.Remove("lee"))
			assert.False(t, idx.Remove("lee"))
			_, ok = idx.Find("lee")
			assert.False(t, ok)
			v, ok = idx.Find("leeds")
			assert.True(t, ok)
			assert.Equal(t, []int{1}, v)
			assert.Equal(t, 3, idx.Len())
		})
	}
}

func TestIndex_NameRange(t *testing.T) {
	names := []string{"park", "lee", "leeds", "le", "kim", "lopez", "l", "zhang", "lee-smith"}
	for _, typ := range nameIndexTypes {
		t.Run(IndexTypeName(typ), func(t *testing.T) {
			idx, err := NewNameIndex(typ, 2)
			require.Nil(t, err)
			for i, name := range names {
				idx.Insert(name, []int{i})
			}

			for _, r := range [][2]string{{"le", "le\xff"}, {"", "\xff"}, {"a", "l"}, {"lee", "lopez"}, {"m", "a"}} {
				want := make([]string, 0)
				for _, name := range names {
					if name >= r[0] && name <= r[1] {
						want = append(want, name)
					}
				}
				sort.Strings(want)

				got := make([]string, 0)
				idx.RangeApply(r[0], r[1], func(key string, value *[]int) {
					got = append(got, key)
				})
				assert.Equal(t, want, got, "range %q", r)
			}
		})
	}
}

func TestIndex_IdRangeAgrees(t *testing.T) {
	ids := gen.RandomIds(300, 42)
	bst, _ := NewIdIndex(BST, 0)
	bt, _ := NewIdIndex(Btree, 3)
	for rid, id := range ids {
		bst.Insert(id, rid)
		bt.Insert(id, rid)
	}

	collect := func(idx Index[int, int], lo, hi int) []int {
		out := make([]int, 0)
		idx.RangeApply(lo, hi, func(_ int, rid *int) {
			out = append(out, *rid)
		})
		return out
	}
	for _, r := range [][2]int{{1, 300}, {40, 41}, {150, 149}, {299, 500}} {
		assert.Equal(t, collect(bst, r[0], r[1]), collect(bt, r[0], r[1]))
	}
}

func TestIndex_Metrics(t *testing.T) {
	for _, typ := range nameIndexTypes {
		t.Run(IndexTypeName(typ), func(t *testing.T) {
			idx, _ := NewNameIndex(typ, 2)
			for _, name := range []string{"b", "a", "c", "d"} {
				idx.Insert(name, nil)
			}
			idx.ResetMetrics()
			assert.Equal(t, 0, idx.Comparisons())

			idx.Find("c")
			assert.Greater(t, idx.Comparisons(), 0)

			idx.ResetMetrics()
			idx.RangeApply("a", "d", func(string, *[]int) {})
			assert.Greater(t, idx.Comparisons(), 0)

			idx.ResetMetrics()
			idx.Insert("e", nil)
			idx.Remove("a")
			assert.Equal(t, 0, idx.Comparisons())
		})
	}
}

func TestParseIndexType(t *testing.T) {
	for _, typ := range nameIndexTypes {
		parsed, err := ParseIndexType(IndexTypeName(typ))
		assert.Nil(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := ParseIndexType(strings.ToUpper("skiplist"))
	assert.ErrorIs(t, err, public.ErrInvalidIndexType)
}
