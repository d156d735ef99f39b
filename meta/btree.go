package meta

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const defaultDegree = 32

type item[K any, V any] struct {
	key   K
	value V
}

// BTree An Index backed by google/btree, every call of its less function is counted.
//
// The counter includes the comparisons spent inside nodes by the binary
// search of the btree package, so it is comparable with the BST counter.
type BTree[K any, V any] struct {
	tree        *btree.BTreeG[*item[K, V]]
	cmp         CompareFunc[K]
	counting    bool
	comparisons int
}

// NewBTree Init BTree struct
func NewBTree[K any, V any](degree int, cmp CompareFunc[K]) *BTree[K, V] {
	if degree < 2 {
		degree = defaultDegree
	}
	bt := &BTree[K, V]{cmp: cmp}
	bt.tree = btree.NewG[*item[K, V]](degree, func(a, b *item[K, V]) bool {
		if bt.counting {
			bt.comparisons++
		}
		return bt.cmp(a.key, b.key) < 0
	})
	return bt
}

// NewOrderedBTree Init BTree ordered by the natural ordering of K
func NewOrderedBTree[K constraints.Ordered, V any](degree int) *BTree[K, V] {
	return NewBTree[K, V](degree, Compare[K])
}

func (bt *BTree[K, V]) Insert(key K, value V) {
	bt.tree.ReplaceOrInsert(&item[K, V]{key: key, value: value})
}

func (bt *BTree[K, V]) Find(key K) (V, bool) {
	if ref, ok := bt.Ref(key); ok {
		return *ref, true
	}
	var zero V
	return zero, false
}

func (bt *BTree[K, V]) Ref(key K) (*V, bool) {
	bt.counting = true
	defer func() { bt.counting = false }()

	it, ok := bt.tree.Get(&item[K, V]{key: key})
	if !ok {
		return nil, false
	}
	return &it.value, true
}

func (bt *BTree[K, V]) Remove(key K) bool {
	_, ok := bt.tree.Delete(&item[K, V]{key: key})
	return ok
}

func (bt *BTree[K, V]) RangeApply(lo, hi K, visit Visitor[K, V]) {
	bt.counting = true
	defer func() { bt.counting = false }()

	bt.tree.AscendGreaterOrEqual(&item[K, V]{key: lo}, func(it *item[K, V]) bool {
		bt.comparisons++
		if bt.cmp(it.key, hi) > 0 {
			return false
		}
		visit(it.key, &it.value)
		return true
	})
}

func (bt *BTree[K, V]) ResetMetrics() {
	bt.comparisons = 0
}

func (bt *BTree[K, V]) Comparisons() int {
	return bt.comparisons
}

func (bt *BTree[K, V]) Len() int {
	return bt.tree.Len()
}
