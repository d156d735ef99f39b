package gen

import (
	"strings"

	"github.com/Kirov7/RidDB/data"
	"golang.org/x/exp/rand"
)

const charset = "abcdefghijklmnopqrstuvwxyz"

// RandomIds n distinct ids from 1 to n in a random order decided by seed
func RandomIds(n int, seed uint64) []int {
	r := rand.New(rand.NewSource(seed))
	ids := r.Perm(n)
	for i := range ids {
		ids[i]++
	}
	return ids
}

// SortedIds the ids 1 to n in ascending order
func SortedIds(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func RandomName(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[r.Intn(len(charset))]
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}

// RandomRecords one record per id with random names, last names are drawn
// from a small pool so the name index holds duplicates
func RandomRecords(ids []int, seed uint64) []data.Record {
	r := rand.New(rand.NewSource(seed))
	pool := make([]string, len(ids)/4+1)
	for i := range pool {
		pool[i] = RandomName(r, 3+r.Intn(6))
	}

	records := make([]data.Record, len(ids))
	for i, id := range ids {
		records[i] = data.Record{
			Id:    id,
			First: RandomName(r, 3+r.Intn(6)),
			Last:  pool[r.Intn(len(pool))],
		}
	}
	return records
}
