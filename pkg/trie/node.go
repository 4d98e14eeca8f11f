// Package trie is the prefix index behind every completion: a rune-keyed tree
// whose terminal nodes carry the suggestions attached to the words ending there.
package trie

import "sort"

// edge links a node to one owned child under a single rune.
type edge struct {
	label rune
	node  *Node
}

// Node is a single vertex of the trie.
// The zero value is an empty, non-terminal node.
type Node struct {
	// children stays sorted by label so walks visit runes in ascending order
	children    []edge
	terminal    bool
	suggestions []string
}

// Terminal reports whether some inserted word ends exactly at this node.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Suggestions returns a copy of the suggestions attached at this node, in insertion order.
func (n *Node) Suggestions() []string {
	if len(n.suggestions) == 0 {
		return []string{}
	}
	out := make([]string, len(n.suggestions))
	copy(out, n.suggestions)
	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the child under r, or nil.
func (n *Node) Child(r rune) *Node {
	i, ok := n.find(r)
	if !ok {
		return nil
	}
	return n.children[i].node
}

func (n *Node) find(r rune) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label >= r
	})
	return i, i < len(n.children) && n.children[i].label == r
}

// childOrCreate is the only place new nodes are allocated.
func (n *Node) childOrCreate(r rune) (*Node, bool) {
	i, ok := n.find(r)
	if ok {
		return n.children[i].node, false
	}
	child := &Node{}
	n.children = append(n.children, edge{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = edge{label: r, node: child}
	return child, true
}
