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

package dictionary

// Node holds one English word and its translation. A node is owned by
// exactly one parent link (or by the dictionary root) and is only ever
// mutated through Dictionary methods; the exported accessors are read-only.
type Node struct {
	key   string // English word, ordering key
	value string // Russian translation
	left  *Node
	right *Node
}

func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	return n.key
}

func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return n.value
}

// Left returns the left child or nil. Do not hold on to the result
// across a mutation of the owning dictionary.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// onlyChild returns the single child of a node that has exactly one.
func (n *Node) onlyChild() *Node {
	if n.left != nil {
		return n.left
	}
	return n.right
}
