// Package search holds the game-tree scaffold for a future lookahead player.
// It only builds and stores nodes; no traversal or pruning is performed here.
package search

import (
	"sort"

	"santase/internal/domain"
)

// NodeID addresses a node inside its Tree.
type NodeID int

// Node is a single position in the game tree.
type Node struct {
	Points       int
	IsMinimizing bool
	Alpha        int
	Beta         int

	children map[domain.Card]NodeID
}

// Tree is an arena of nodes. Every node except the root has exactly one parent.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding a single root node.
func NewTree() *Tree {
	t := &Tree{}
	t.newNode()
	return t
}

func (t *Tree) newNode() NodeID {
	t.nodes = append(t.nodes, Node{children: make(map[domain.Card]NodeID)})
	return NodeID(len(t.nodes) - 1)
}

// Root returns the root node id.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for callers to read or set scores, flags and bounds.
// The pointer is invalidated by the next Add.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Add links a child reached by playing card from parent. If the edge already
// exists the existing child is returned untouched.
func (t *Tree) Add(parent NodeID, card domain.Card) NodeID {
	if child, ok := t.nodes[parent].children[card]; ok {
		return child
	}
	child := t.newNode()
	t.nodes[parent].children[card] = child
	return child
}

// Child returns the node reached from id by playing card.
func (t *Tree) Child(id NodeID, card domain.Card) (NodeID, bool) {
	child, ok := t.nodes[id].children[card]
	return child, ok
}

// Edge is a card transition to a child node.
type Edge struct {
	Card  domain.Card
	Child NodeID
}

// Children returns the outgoing edges of id in deck order.
func (t *Tree) Children(id NodeID) []Edge {
	edges := make([]Edge, 0, len(t.nodes[id].children))
	for c, child := range t.nodes[id].children {
		edges = append(edges, Edge{Card: c, Child: child})
	}
	sort.Slice(edges, func(i, j int) bool {
		return domain.DeckIndex(edges[i].Card) < domain.DeckIndex(edges[j].Card)
	})
	return edges
}

// IsLeaf is true for nodes without children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}
