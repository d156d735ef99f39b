package meta

import "golang.org/x/exp/constraints"

// CompareFunc three-way ordering of keys: negative when a < b, zero when equal, positive when a > b
type CompareFunc[K any] func(a, b K) int

type bstNode[K any, V any] struct {
	key   K
	value V
	left  *bstNode[K, V]
	right *bstNode[K, V]
}

// BinarySearchTree An unbalanced binary search tree counting the key comparisons of its lookups.
//
// Only Find, Ref and RangeApply are counted. The counter accumulates until
// ResetMetrics, so reset immediately before the operation to be measured.
// References handed out by Ref or a Visitor are invalidated by Remove.
type BinarySearchTree[K any, V any] struct {
	root        *bstNode[K, V]
	cmp         CompareFunc[K]
	size        int
	comparisons int
}

// NewBST Init BST ordered by cmp
func NewBST[K any, V any](cmp CompareFunc[K]) *BinarySearchTree[K, V] {
	return &BinarySearchTree[K, V]{cmp: cmp}
}

// NewOrderedBST Init BST ordered by the natural ordering of K
func NewOrderedBST[K constraints.Ordered, V any]() *BinarySearchTree[K, V] {
	return NewBST[K, V](Compare[K])
}

func (t *BinarySearchTree[K, V]) compare(a, b K) int {
	t.comparisons++
	return t.cmp(a, b)
}

func (t *BinarySearchTree[K, V]) Insert(key K, value V) {
	link := &t.root
	for *link != nil {
		c := t.cmp(key, (*link).key)
		if c == 0 {
			(*link).value = value
			return
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &bstNode[K, V]{key: key, value: value}
	t.size++
}

func (t *BinarySearchTree[K, V]) Find(key K) (V, bool) {
	if ref, ok := t.Ref(key); ok {
		return *ref, true
	}
	var zero V
	return zero, false
}

func (t *BinarySearchTree[K, V]) Ref(key K) (*V, bool) {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		if c == 0 {
			return &n.value, true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, false
}

func (t *BinarySearchTree[K, V]) Remove(key K) bool {
	link := &t.root
	for *link != nil {
		c := t.cmp(key, (*link).key)
		if c == 0 {
			break
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// replace with the in-order successor, then unlink the successor
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		s := *succ
		n.key, n.value = s.key, s.value
		*succ = s.right
	}
	t.size--
	return true
}

func (t *BinarySearchTree[K, V]) RangeApply(lo, hi K, visit Visitor[K, V]) {
	t.rangeApply(t.root, lo, hi, visit)
}

func (t *BinarySearchTree[K, V]) rangeApply(n *bstNode[K, V], lo, hi K, visit Visitor[K, V]) {
	if n == nil {
		return
	}
	cl := t.compare(lo, n.key)
	ch := t.compare(n.key, hi)

	// nothing in range lies left of a key <= lo or right of a key >= hi
	if cl < 0 {
		t.rangeApply(n.left, lo, hi, visit)
	}
	if cl <= 0 && ch <= 0 {
		visit(n.key, &n.value)
	}
	if ch < 0 {
		t.rangeApply(n.right, lo, hi, visit)
	}
}

func (t *BinarySearchTree[K, V]) ResetMetrics() {
	t.comparisons = 0
}

func (t *BinarySearchTree[K, V]) Comparisons() int {
	return t.comparisons
}

func (t *BinarySearchTree[K, V]) Len() int {
	return t.size
}

// Height the number of nodes on the longest root-to-leaf path, 0 for an empty tree
func (t *BinarySearchTree[K, V]) Height() int {
	return height(t.root)
}

func height[K any, V any](n *bstNode[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
