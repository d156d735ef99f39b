package RidDB

const (
	// prefixSentinel sorts after every byte of a valid UTF-8 string
	prefixSentinel = "\xff"

	defaultBTreeDegree = 32
	defaultLuaPoolSize = 4
)
