package RidDB

import (
	"github.com/Kirov7/RidDB/meta"
)

type index struct {
	id   meta.Index[int, int]
	last meta.Index[string, []int]
}

func newIndex(opt Options) (*index, error) {
	id, err := meta.NewIdIndex(opt.IdIndexType, opt.BTreeDegree)
	if err != nil {
		return nil, err
	}
	last, err := meta.NewNameIndex(opt.NameIndexType, opt.BTreeDegree)
	if err != nil {
		return nil, err
	}
	return &index{id: id, last: last}, nil
}

// put map id to rid and append rid to the list of its last name
func (i *index) put(id int, name string, rid int) {
	i.id.Insert(id, rid)
	if rids, ok := i.last.Ref(name); ok {
		*rids = append(*rids, rid)
		return
	}
	i.last.Insert(name, []int{rid})
}

// unindexName prune rid from the list of name, dropping the key once the list is empty
func (i *index) unindexName(name string, rid int) {
	rids, ok := i.last.Ref(name)
	if !ok {
		return
	}
	kept := (*rids)[:0]
	for _, r := range *rids {
		if r != rid {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		i.last.Remove(name)
		return
	}
	*rids = kept
}
