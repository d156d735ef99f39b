package meta

import (
	"github.com/Kirov7/RidDB/public"
	"golang.org/x/exp/constraints"
)

type IndexType = int8

const (
	BST IndexType = iota
	Btree
	ART
)

// Visitor receives every key of a range traversal with a mutable reference to its value
type Visitor[K any, V any] func(key K, value *V)

// Index Generic ordered index instrumented with a comparison counter
type Index[K any, V any] interface {
	// Insert Stores value under key, replacing the value of an existing key
	Insert(key K, value V)

	// Find Retrieve the value stored under key
	Find(key K) (V, bool)

	// Ref Retrieve a mutable reference to the value stored under key
	Ref(key K) (*V, bool)

	// Remove Delete key, reports whether it was present
	Remove(key K) bool

	// RangeApply Visit lo <= key <= hi in ascending key order
	RangeApply(lo, hi K, visit Visitor[K, V])

	// ResetMetrics zero the comparison counter
	ResetMetrics()

	// Comparisons the key comparisons counted since the last reset
	Comparisons() int

	// Len the number of keys
	Len() int
}

// Compare the natural three-way ordering of an ordered type
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NewIdIndex build the unique index mapping a record id to its RID
func NewIdIndex(typ IndexType, degree int) (Index[int, int], error) {
	switch typ {
	case BST:
		return NewOrderedBST[int, int](), nil
	case Btree:
		return NewOrderedBTree[int, int](degree), nil
	default:
		return nil, public.ErrInvalidIndexType
	}
}

// NewNameIndex build the index mapping a lowercase last name to its RIDs
func NewNameIndex(typ IndexType, degree int) (Index[string, []int], error) {
	switch typ {
	case BST:
		return NewOrderedBST[string, []int](), nil
	case Btree:
		return NewOrderedBTree[string, []int](degree), nil
	case ART:
		return NewART[[]int](), nil
	default:
		return nil, public.ErrInvalidIndexType
	}
}

// ParseIndexType map a configured name onto an IndexType
func ParseIndexType(name string) (IndexType, error) {
	switch name {
	case "bst", "":
		return BST, nil
	case "btree":
		return Btree, nil
	case "art":
		return ART, nil
	default:
		return BST, public.ErrInvalidIndexType
	}
}

// IndexTypeName the configured name of typ
func IndexTypeName(typ IndexType) string {
	switch typ {
	case BST:
		return "bst"
	case Btree:
		return "btree"
	case ART:
		return "art"
	default:
		return "unknown"
	}
}
