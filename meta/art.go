package meta

import (
	art "github.com/plar/go-adaptive-radix-tree"
)

// AdaptiveRadixTree A string keyed Index backed by an adaptive radix tree.
//
// A radix tree descends by key bytes and never compares whole keys, so its
// counter reports the leaf keys examined instead: one per lookup of a
// non-empty tree and one per leaf a range traversal looks at.
type AdaptiveRadixTree[V any] struct {
	tree        art.Tree
	comparisons int
}

func NewART[V any]() *AdaptiveRadixTree[V] {
	return &AdaptiveRadixTree[V]{tree: art.New()}
}

func (a *AdaptiveRadixTree[V]) Insert(key string, value V) {
	if ref, ok := a.lookup(key); ok {
		*ref = value
		return
	}
	v := value
	a.tree.Insert(art.Key(key), &v)
}

func (a *AdaptiveRadixTree[V]) Find(key string) (V, bool) {
	if ref, ok := a.Ref(key); ok {
		return *ref, true
	}
	var zero V
	return zero, false
}

func (a *AdaptiveRadixTree[V]) Ref(key string) (*V, bool) {
	if a.tree.Size() > 0 {
		a.comparisons++
	}
	return a.lookup(key)
}

func (a *AdaptiveRadixTree[V]) lookup(key string) (*V, bool) {
	value, found := a.tree.Search(art.Key(key))
	if !found {
		return nil, false
	}
	return value.(*V), true
}

func (a *AdaptiveRadixTree[V]) Remove(key string) bool {
	_, deleted := a.tree.Delete(art.Key(key))
	return deleted
}

func (a *AdaptiveRadixTree[V]) RangeApply(lo, hi string, visit Visitor[string, V]) {
	if lo > hi {
		return
	}
	// every key in [lo, hi] starts with the common prefix of the bounds
	prefix := commonPrefix(lo, hi)
	a.tree.ForEachPrefix(art.Key(prefix), func(node art.Node) bool {
		if node.Kind() != art.Leaf {
			return true
		}
		a.comparisons++
		key := string(node.Key())
		if key > hi {
			return false
		}
		if key >= lo {
			visit(key, node.Value().(*V))
		}
		return true
	})
}

func (a *AdaptiveRadixTree[V]) ResetMetrics() {
	a.comparisons = 0
}

func (a *AdaptiveRadixTree[V]) Comparisons() int {
	return a.comparisons
}

func (a *AdaptiveRadixTree[V]) Len() int {
	return a.tree.Size()
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
