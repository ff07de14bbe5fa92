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

package collisions

import (
	"strings"
)

type node struct {
	record Record
	height int // 0 for a leaf
	left   *node
	right  *node
}

// Index is an AVL tree of collision records ordered by Compare.
// It is not safe for concurrent use.
type Index struct {
	root  *node
	count int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{root: nil}
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return idx.count
}

// Height returns the height of the tree: -1 when empty, 0 for a single record.
func (idx *Index) Height() int {
	if idx.root == nil {
		return -1
	}
	return idx.root.height
}

func updateHeight(n *node) {
	switch {
	case n == nil:
		return
	case n.left == nil && n.right == nil:
		n.height = 0
	case n.left == nil:
		n.height = n.right.height + 1
	case n.right == nil:
		n.height = n.left.height + 1
	default:
		n.height = max(n.left.height, n.right.height) + 1
	}
}

// balanceFactor is height(right) - height(left). A missing side counts as
// height -1, which is what the one-child branches below encode.
func balanceFactor(n *node) int {
	if n == nil {
		return -1
	}
	if n.right == nil {
		return -n.height
	}
	if n.left == nil {
		return n.height
	}
	return n.right.height - n.left.height
}

func rotateLL(a *node) *node {
	b := a.left

	a.left = b.right
	b.right = a

	updateHeight(a)
	updateHeight(b)
	return b
}

func rotateRR(a *node) *node {
	b := a.right

	a.right = b.left
	b.left = a

	updateHeight(a)
	updateHeight(b)
	return b
}

func rotateLR(a *node) *node {
	b := a.left
	c := b.right

	a.left = c.right
	b.right = c.left
	c.left = b
	c.right = a

	updateHeight(a)
	updateHeight(b)
	updateHeight(c)
	return c
}

func rotateRL(a *node) *node {
	b := a.right
	c := b.left

	a.right = c.left
	b.left = c.right
	c.right = b
	c.left = a

	updateHeight(a)
	updateHeight(b)
	updateHeight(c)
	return c
}

// rebalance expects n's height to be current and returns the subtree root
// after at most one single or double rotation.
func rebalance(n *node) *node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf <= -2 {
		if balanceFactor(n.left) > 0 {
			return rotateLR(n)
		}
		return rotateLL(n)
	}

	// Right-heavy
	if bf >= 2 {
		if balanceFactor(n.right) < 0 {
			return rotateRL(n)
		}
		return rotateRR(n)
	}

	return n
}

// Insert adds r to the index. Inserting a record equal to one already present
// leaves the index unchanged.
func (idx *Index) Insert(r Record) {
	idx.root = idx.insert(idx.root, r)
}

func (idx *Index) insert(n *node, r Record) *node {
	if n == nil {
		idx.count++
		return &node{record: r}
	}

	c := Compare(r, n.record)
	switch {
	case c < 0:
		n.left = idx.insert(n.left, r)
	case c > 0:
		n.right = idx.insert(n.right, r)
	default:
		return n
	}

	updateHeight(n)
	return rebalance(n)
}

// Contains reports whether a record equal to r is stored.
func (idx *Index) Contains(r Record) bool {
	n := idx.root
	for n != nil {
		c := Compare(r, n.record)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Delete removes the record equal to target and reports whether one was found.
func (idx *Index) Delete(target Record) bool {
	var removed bool
	idx.root = idx.remove(idx.root, target, &removed)
	if removed {
		idx.count--
	}
	return removed
}

func (idx *Index) remove(n *node, target Record, removed *bool) *node {
	if n == nil {
		return nil
	}

	c := Compare(target, n.record)
	switch {
	case c < 0:
		n.left = idx.remove(n.left, target, removed)
	case c > 0:
		n.right = idx.remove(n.right, target, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: take over the in-order predecessor and delete it below.
		pred := rightmost(n.left)
		n.record = pred.record
		n.left = idx.remove(n.left, pred.record, removed)
	}

	updateHeight(n)
	return rebalance(n)
}

func rightmost(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Ascend calls fn for every record in ascending order until fn returns false.
func (idx *Index) Ascend(fn func(Record) bool) {
	ascend(idx.root, fn)
}

func ascend(n *node, fn func(Record) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.record) {
		return false
	}
	return ascend(n.right, fn)
}

// Records returns every record in ascending order.
func (idx *Index) Records() []Record {
	out := make([]Record, 0, idx.count)
	idx.Ascend(func(r Record) bool {
		out = append(out, r)
		return true
	})
	return out
}

// String lists the records in ascending order separated by single spaces.
func (idx *Index) String() string {
	var sb strings.Builder
	idx.Ascend(func(r Record) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
		return true
	})
	return sb.String()
}

// TreeString draws the tree in pre-order, one record per line, with "|--"
// marking depth and "null" for absent children.
func (idx *Index) TreeString() string {
	var sb strings.Builder
	drawTree(idx.root, 0, &sb)
	return sb.String()
}

func drawTree(n *node, level int, sb *strings.Builder) {
	sb.WriteByte('\n')
	if level > 0 {
		sb.WriteString(strings.Repeat("   ", level-1))
		sb.WriteString("|--")
	}
	if n == nil {
		sb.WriteString("null")
		return
	}
	sb.WriteString(n.record.String())
	drawTree(n.left, level+1, sb)
	drawTree(n.right, level+1, sb)
}
