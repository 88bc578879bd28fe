package index

import "sync"

// Kind names a scalar index implementation.
type Kind string

// KindTrie is the trie-backed string index.
const KindTrie Kind = "trie"

// Constructor creates an unbuilt index instance.
type Constructor func() ScalarIndex

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Constructor{}
)

// Register registers a constructor for an index kind.
//
// Implementations should typically call this from an init() function.
func Register(kind Kind, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = c
}

// New creates an unbuilt index of the given kind.
func New(kind Kind) (ScalarIndex, error) {
	registryMu.RLock()
	c, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, &ErrUnknownKind{Kind: kind}
	}
	return c(), nil
}
