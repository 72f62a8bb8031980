package notes

import (
	"tulika/internal/domain/models"
)

// BuildTree assembles the nested forest from a flat item listing. Pure and
// deterministic: the same input always yields a structurally identical
// forest, and the input slice is never modified.
//
// Three passes over a node map: create every node, link children to
// parents, collect the roots. There is no recursion over parent links, so
// a malformed dataset with a parent cycle cannot hang the build - nodes on
// a cycle never reach a root and simply stay out of the forest, as do
// orphans whose parent id dangles after a shallow cascade delete.
//
// Child order follows input order, which ListByOwner fixes to insertion
// order.
func BuildTree(items []models.ItemSummary) models.Forest {
	nodes := make(map[int64]*models.TreeNode, len(items))
	for _, item := range items {
		nodes[item.ID] = &models.TreeNode{
			ID:       item.ID,
			ParentID: item.ParentID,
			Name:     item.Name,
			Kind:     item.Kind,
			Children: []*models.TreeNode{},
		}
	}

	forest := models.Forest{}
	for _, item := range items {
		node := nodes[item.ID]
		if item.ParentID == nil {
			forest = append(forest, node)
			continue
		}
		if parent, exists := nodes[*item.ParentID]; exists {
			parent.Children = append(parent.Children, node)
		}
	}

	return forest
}
