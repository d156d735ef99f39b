package RidDB

import (
	"github.com/Kirov7/RidDB/meta"
	"github.com/Kirov7/RidDB/public"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options struct {
	IdIndexType     IndexType
	NameIndexType   IndexType
	BTreeDegree     int
	DuplicatePolicy DuplicatePolicy
	// LuaPoolSize 0 disables Eval
	LuaPoolSize int
	Logger      *zap.Logger
}

type IndexType = meta.IndexType

const (
	BST   IndexType = meta.BST
	Btree IndexType = meta.Btree
	ART   IndexType = meta.ART
)

// DuplicatePolicy decides what InsertRecord does with an id that already names a live record
type DuplicatePolicy = int8

const (
	// Supersede tombstones and unindexes the old record, then inserts the new one
	Supersede DuplicatePolicy = iota
	// Reject fails the insert with public.ErrIdExists
	Reject
)

func DefaultOptions() Options {
	return Options{
		IdIndexType:     BST,
		NameIndexType:   BST,
		BTreeDegree:     defaultBTreeDegree,
		DuplicatePolicy: Supersede,
		LuaPoolSize:     defaultLuaPoolSize,
		Logger:          zap.NewNop(),
	}
}

func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	switch name {
	case "supersede", "":
		return Supersede, nil
	case "reject":
		return Reject, nil
	default:
		return Supersede, errors.Wrapf(public.ErrInvalidOptions, "duplicate policy %q", name)
	}
}

func checkOptions(opt *Options) error {
	if opt.IdIndexType == ART {
		return errors.Wrap(public.ErrInvalidIndexType, "the id index can not be an art")
	}
	if opt.BTreeDegree < 2 {
		opt.BTreeDegree = defaultBTreeDegree
	}
	if opt.DuplicatePolicy != Supersede && opt.DuplicatePolicy != Reject {
		return errors.Wrapf(public.ErrInvalidOptions, "duplicate policy %d", opt.DuplicatePolicy)
	}
	if opt.LuaPoolSize < 0 {
		return errors.Wrapf(public.ErrInvalidOptions, "lua pool size %d", opt.LuaPoolSize)
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	return nil
}
