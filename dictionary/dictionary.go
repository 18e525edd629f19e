// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dictionary implements an English to Russian dictionary on top of
// an unbalanced binary search tree ordered by byte-wise key comparison.
//
// A Dictionary is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call, reads included.
package dictionary

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidKey is returned for an empty key.
	ErrInvalidKey = errors.New("dictionary: key must not be empty")
	// ErrRead wraps failures of the Reader during Load.
	ErrRead = errors.New("dictionary: read from store failed")
	// ErrWrite wraps failures of the Writer during Save.
	ErrWrite = errors.New("dictionary: write to store failed")
	// ErrNoReader is returned by Load when no Reader was configured.
	ErrNoReader = errors.New("dictionary: no reader configured")
	// ErrNoWriter is returned by Save when no Writer was configured.
	ErrNoWriter = errors.New("dictionary: no writer configured")
)

// Dictionary owns the whole tree through its root.
type Dictionary struct {
	root   *Node
	reader Reader
	writer Writer
}

// New creates an empty dictionary. Either store side may be nil when the
// caller never loads or never saves.
func New(r Reader, w Writer) *Dictionary {
	return &Dictionary{reader: r, writer: w}
}

// Root exposes the tree for read-only inspection.
func (d *Dictionary) Root() *Node {
	return d.root
}

// Insert stores value under key. An existing key gets its value replaced
// in place with no change to the tree shape; otherwise one new leaf is
// linked below the last node visited.
func (d *Dictionary) Insert(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if d.root == nil {
		d.root = &Node{key: key, value: value}
		return nil
	}

	node, parent := d.findWithParent(key)
	if node != nil {
		node.value = value
		return nil
	}

	leaf := &Node{key: key, value: value}
	if key < parent.key {
		parent.left = leaf
	} else {
		parent.right = leaf
	}
	return nil
}

// Find returns the translation stored for key. A missing key is reported
// through ok, not as an error.
func (d *Dictionary) Find(key string) (value string, ok bool, err error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}
	for cur := d.root; cur != nil; {
		switch {
		case key == cur.key:
			return cur.value, true, nil
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return "", false, nil
}

// Get is Find.
func (d *Dictionary) Get(key string) (string, bool, error) {
	return d.Find(key)
}

// Set is Insert.
func (d *Dictionary) Set(key, value string) error {
	return d.Insert(key, value)
}

// Delete removes key and reports whether it was present.
func (d *Dictionary) Delete(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}
	if d.root == nil {
		return false, nil
	}

	node, parent := d.findWithParent(key)
	if node == nil {
		return false, nil
	}

	switch {
	case node.isLeaf():
		d.removeLeaf(node, parent)
	case node.left == nil || node.right == nil:
		d.removeOneChild(node, parent)
	default:
		d.removeTwoChildren(node)
	}
	return true, nil
}

// Size counts the nodes reachable from the root.
func (d *Dictionary) Size() int {
	return countNodes(d.root)
}

// Height is the number of nodes on the longest root-to-leaf path.
func (d *Dictionary) Height() int {
	return height(d.root)
}

// Walk visits every pair in ascending key order until fn returns false.
func (d *Dictionary) Walk(fn func(key, value string) bool) {
	walk(d.root, fn)
}

// Pairs returns every pair in ascending key order.
func (d *Dictionary) Pairs() []WordPair {
	pairs := make([]WordPair, 0, d.Size())
	d.Walk(func(key, value string) bool {
		pairs = append(pairs, WordPair{Key: key, Value: value})
		return true
	})
	return pairs
}

// SearchPrefix returns, in ascending order, every pair whose key starts
// with prefix. An empty prefix matches everything.
func (d *Dictionary) SearchPrefix(prefix string) []WordPair {
	var results []WordPair
	prefixSearch(d.root, prefix, &results)
	return results
}

// findWithParent descends from the root the same way Find does and
// returns the node holding key (nil if absent) together with the last
// node visited before it. For a missing key the parent is where a new
// leaf would be attached; for the root it is nil.
func (d *Dictionary) findWithParent(key string) (node, parent *Node) {
	cur := d.root
	for cur != nil && cur.key != key {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur, parent
}

// replaceChild points whichever link owned old (parent's child or the
// root) at repl.
func (d *Dictionary) replaceChild(parent, old, repl *Node) {
	switch {
	case parent == nil:
		d.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

func (d *Dictionary) removeLeaf(node, parent *Node) {
	d.replaceChild(parent, node, nil)
}

// removeOneChild promotes the only child of node into its place.
func (d *Dictionary) removeOneChild(node, parent *Node) {
	d.replaceChild(parent, node, node.onlyChild())
}

// removeTwoChildren copies the in-order successor's pair into node and
// unlinks the successor. The successor is the leftmost node of the right
// subtree, so it has at most a right child.
func (d *Dictionary) removeTwoChildren(node *Node) {
	succParent := node
	succ := node.right
	for succ.left != nil {
		succParent = succ
		succ = succ.left
	}

	node.key = succ.key
	node.value = succ.value
	d.replaceChild(succParent, succ, succ.right)
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

func walk(n *Node, fn func(key, value string) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return walk(n.right, fn)
}

// prefixSearch collects matches in order. Keys sharing a prefix form a
// contiguous range starting at the prefix itself, so a subtree is skipped
// once its root falls outside that range on the same side.
func prefixSearch(n *Node, prefix string, results *[]WordPair) {
	if n == nil {
		return
	}

	matches := strings.HasPrefix(n.key, prefix)

	// Left keys are smaller; they can only match while n.key >= prefix.
	if n.key >= prefix {
		prefixSearch(n.left, prefix, results)
	}

	if matches {
		*results = append(*results, WordPair{Key: n.key, Value: n.value})
	}

	// Right keys are larger; past the range once n.key is beyond it.
	if n.key < prefix || matches {
		prefixSearch(n.right, prefix, results)
	}
}
