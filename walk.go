// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package litedoc

// Cursor is passed to the callbacks of WalkOptions during a Walk. It
// reports the node currently being visited and its ancestor chain.
type Cursor struct {
	node    Node
	parents []Node
}

// Node returns the node the Cursor currently points to.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the immediate parent of the current node, or nil at the
// root.
func (c *Cursor) Parent() Node {
	if len(c.parents) == 0 {
		return nil
	}
	return c.parents[len(c.parents)-1]
}

// WalkOptions controls a Walk. Pre is called before a node's children are
// visited; Post is called after. Either may be nil. Returning false from
// Pre skips that node's children (Post is still called for the node
// itself).
type WalkOptions struct {
	Pre  func(c *Cursor) bool
	Post func(c *Cursor)
}

// Walk performs a depth-first traversal of n and its descendants in source
// order.
func Walk(n Node, opts WalkOptions) {
	walk(n, nil, opts)
}

func walk(n Node, parents []Node, opts WalkOptions) {
	c := &Cursor{node: n, parents: parents}
	descend := true
	if opts.Pre != nil {
		descend = opts.Pre(c)
	}
	if descend {
		childParents := append(append([]Node(nil), parents...), n)
		for _, child := range children(n) {
			walk(child, childParents, opts)
		}
	}
	if opts.Post != nil {
		opts.Post(c)
	}
}
