package data

import "strings"

// Record a student row kept in the heap
type Record struct {
	Id      int
	First   string
	Last    string
	Deleted bool
}

// NameKey the key used by the last-name index
func (r *Record) NameKey() string {
	return NameKey(r.Last)
}

// NameKey lowercase a last name (or a prefix of one) for indexing
func NameKey(last string) string {
	return strings.ToLower(last)
}

// Valid check the fields an ingested record must carry
func (r *Record) Valid() bool {
	return r.First != "" && r.Last != ""
}
