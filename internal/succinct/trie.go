// Package succinct implements an immutable LOUDS-encoded byte trie.
//
// The trie stores a set of byte strings. Every stored key is assigned a
// stable id in [0, NumKeys), the rank of its terminal node in level order.
// The encoding is three flat arrays (the LOUDS degree bits, one label byte
// per node, and a terminal bit per node), so a trie serializes as a small
// number of contiguous byte ranges and navigation needs no pointers.
package succinct

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/hupe1980/triego/internal/bitvec"
)

// ErrMalformed is returned when serialized trie bytes fail validation.
var ErrMalformed = errors.New("succinct: malformed trie data")

// Trie is an immutable byte trie over a set of keys.
type Trie struct {
	// louds holds, for each node in level order, degree 1-bits followed by
	// a terminating 0-bit. For n nodes it has n-1 ones and n zeros.
	louds *bitvec.Vector
	// labels[i] is the byte on the edge leading to node i. labels[0] is
	// unused (the root has no incoming edge).
	labels []byte
	// term marks nodes that hold a key. A key's id is the rank of its
	// terminal bit.
	term *bitvec.Vector
}

type buildNode struct {
	label    byte
	terminal bool
	children []*buildNode // sorted by label
}

func (n *buildNode) child(c byte) *buildNode {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].label >= c })
	if i < len(n.children) && n.children[i].label == c {
		return n.children[i]
	}
	return nil
}

func (n *buildNode) insertChild(c byte) *buildNode {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].label >= c })
	if i < len(n.children) && n.children[i].label == c {
		return n.children[i]
	}
	child := &buildNode{label: c}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Build constructs a trie over the given keys. Duplicate keys collapse into
// one stored key. The encoding is canonical for a given key set, so two
// builds over the same distinct keys produce identical bytes.
func Build(keys []string) *Trie {
	root := &buildNode{}
	for _, key := range keys {
		node := root
		for i := 0; i < len(key); i++ {
			node = node.insertChild(key[i])
		}
		node.terminal = true
	}

	// Level-order emission.
	var louds, term bitvec.Builder
	labels := []byte{0}
	queue := []*buildNode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		term.Append(node.terminal)
		for _, child := range node.children {
			louds.Append(true)
			labels = append(labels, child.label)
			queue = append(queue, child)
		}
		louds.Append(false)
	}

	return &Trie{louds: louds.Build(), labels: labels, term: term.Build()}
}

// NumNodes returns the number of trie nodes, including the root.
func (t *Trie) NumNodes() int { return len(t.labels) }

// NumKeys returns the number of stored keys.
func (t *Trie) NumKeys() int { return t.term.Rank1(t.term.Len()) }

// childRange returns the first child node number and child count of node i.
// Children of a node are consecutive node numbers with ascending labels.
func (t *Trie) childRange(i int) (first, count int) {
	start := 0
	if i > 0 {
		start = t.louds.Select0(i-1) + 1
	}
	end := t.louds.Select0(i)
	// Ones before start are the bits that introduced nodes 1..start-i.
	return start - i + 1, end - start
}

// child returns the child of node i along label c, or -1.
func (t *Trie) child(i int, c byte) int {
	first, count := t.childRange(i)
	lo := sort.Search(count, func(k int) bool { return t.labels[first+k] >= c })
	if lo < count && t.labels[first+lo] == c {
		return first + lo
	}
	return -1
}

// walk descends from the root along key and returns the final node, or -1
// if the path does not exist.
func (t *Trie) walk(key string) int {
	node := 0
	for i := 0; i < len(key); i++ {
		if node = t.child(node, key[i]); node < 0 {
			return -1
		}
	}
	return node
}

// Lookup returns the id of key, if stored.
func (t *Trie) Lookup(key string) (uint32, bool) {
	node := t.walk(key)
	if node < 0 || !t.term.Get(node) {
		return 0, false
	}
	return uint32(t.term.Rank1(node)), true
}

// WalkPrefix calls fn with the id of every stored key that begins with
// prefix. Enumeration stops early if fn returns false. An empty prefix
// enumerates every key.
func (t *Trie) WalkPrefix(prefix string, fn func(id uint32) bool) {
	top := t.walk(prefix)
	if top < 0 {
		return
	}
	stack := []int{top}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.term.Get(node) {
			if !fn(uint32(t.term.Rank1(node))) {
				return
			}
		}
		first, count := t.childRange(node)
		for k := count - 1; k >= 0; k-- {
			stack = append(stack, first+k)
		}
	}
}

// Keys calls fn with every stored key and its id, in lexicographic key
// order. The key slice is reused between calls; fn must copy it to retain
// it. Enumeration stops early if fn returns false.
func (t *Trie) Keys(fn func(key []byte, id uint32) bool) {
	var key []byte
	t.visit(0, &key, fn)
}

func (t *Trie) visit(node int, key *[]byte, fn func(key []byte, id uint32) bool) bool {
	if t.term.Get(node) {
		if !fn(*key, uint32(t.term.Rank1(node))) {
			return false
		}
	}
	first, count := t.childRange(node)
	for k := 0; k < count; k++ {
		*key = append(*key, t.labels[first+k])
		if !t.visit(first+k, key, fn) {
			return false
		}
		*key = (*key)[:len(*key)-1]
	}
	return true
}

// WriteTo writes the trie in little-endian binary form.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	n, err := t.louds.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := t.term.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}
	wrote, err := w.Write(t.labels)
	return n + int64(wrote), err
}

// Read reconstructs a Trie previously written with WriteTo.
func Read(r io.Reader) (*Trie, error) {
	louds, err := bitvec.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: louds bits: %w", ErrMalformed, err)
	}
	term, err := bitvec.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: terminal bits: %w", ErrMalformed, err)
	}
	numNodes := term.Len()
	if numNodes < 1 {
		return nil, fmt.Errorf("%w: no nodes", ErrMalformed)
	}
	if louds.Len() != 2*numNodes-1 {
		return nil, fmt.Errorf("%w: louds length %d for %d nodes", ErrMalformed, louds.Len(), numNodes)
	}
	if louds.Rank1(louds.Len()) != numNodes-1 {
		return nil, fmt.Errorf("%w: louds degree sum mismatch", ErrMalformed)
	}
	labels := make([]byte, numNodes)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("%w: labels: %w", ErrMalformed, err)
	}
	return &Trie{louds: louds, labels: labels, term: term}, nil
}
