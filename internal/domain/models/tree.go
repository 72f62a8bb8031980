package models

// TreeNode is one item in the nested presentation tree with its children
// attached. Children are pointers so nesting works while nodes are still
// being linked up.
type TreeNode struct {
	ID       int64       `json:"id"`
	ParentID *int64      `json:"parent_id"`
	Name     string      `json:"name"`
	Kind     Kind        `json:"kind"`
	Children []*TreeNode `json:"children"`
}

// Forest is the ordered collection of root-level tree nodes.
type Forest []*TreeNode
