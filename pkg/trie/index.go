package trie

import "iter"

// Match pairs a suggestion with the indexed word that carried it.
type Match struct {
	Word       string
	Suggestion string
}

// Stats summarizes the shape of an Index.
type Stats struct {
	Nodes       int
	Terminals   int
	Suggestions int
}

// Index owns the root node, which stands for the empty string.
//
// An Index is built then frozen: every Insert must happen before any
// concurrent Search. Once populated, any number of goroutines may read it
// without locking.
type Index struct {
	root  *Node
	stats Stats
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		root:  &Node{},
		stats: Stats{Nodes: 1},
	}
}

// Root exposes the root node for read-only inspection.
func (ix *Index) Root() *Node {
	return ix.root
}

// Insert walks word rune by rune, creating missing children, then marks the
// final node terminal and appends suggestion to it.
// The empty word marks the root itself.
func (ix *Index) Insert(word, suggestion string) {
	node := ix.root
	for _, r := range word {
		var created bool
		node, created = node.childOrCreate(r)
		if created {
			ix.stats.Nodes++
		}
	}
	if !node.terminal {
		node.terminal = true
		ix.stats.Terminals++
	}
	node.suggestions = append(node.suggestions, suggestion)
	ix.stats.Suggestions++
}

// Search returns every suggestion reachable under prefix.
// Order is depth-first: a node's own suggestions, then its children by
// ascending rune. A prefix with no path yields an empty slice.
func (ix *Index) Search(prefix string) []string {
	out := []string{}
	node := ix.descend(prefix)
	if node == nil {
		return out
	}
	collect(node, &out)
	return out
}

// All is the lazy form of Search. It yields the same sequence and stops
// walking as soon as the consumer stops.
func (ix *Index) All(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		node := ix.descend(prefix)
		if node == nil {
			return
		}
		walk(node, yield)
	}
}

// Matches is Search with each suggestion labelled by the word it belongs to.
func (ix *Index) Matches(prefix string) []Match {
	out := []Match{}
	node := ix.descend(prefix)
	if node == nil {
		return out
	}
	path := []rune(prefix)
	collectMatches(node, path, &out)
	return out
}

// Contains reports whether word was inserted as a whole word.
func (ix *Index) Contains(word string) bool {
	node := ix.descend(word)
	return node != nil && node.terminal
}

// Stats reports node, terminal and suggestion counts.
func (ix *Index) Stats() Stats {
	return ix.stats
}

func (ix *Index) descend(prefix string) *Node {
	node := ix.root
	for _, r := range prefix {
		node = node.Child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

func collect(n *Node, out *[]string) {
	*out = append(*out, n.suggestions...)
	for _, e := range n.children {
		collect(e.node, out)
	}
}

func walk(n *Node, yield func(string) bool) bool {
	for _, s := range n.suggestions {
		if !yield(s) {
			return false
		}
	}
	for _, e := range n.children {
		if !walk(e.node, yield) {
			return false
		}
	}
	return true
}

func collectMatches(n *Node, path []rune, out *[]Match) {
	if len(n.suggestions) > 0 {
		word := string(path)
		for _, s := range n.suggestions {
			*out = append(*out, Match{Word: word, Suggestion: s})
		}
	}
	for _, e := range n.children {
		collectMatches(e.node, append(path, e.label), out)
	}
}
