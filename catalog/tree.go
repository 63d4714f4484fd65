package catalog

import (
	"log"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

// CategoryNode is one node of the resolved category forest. Children are
// held as explicit node references built once from the flat list; nodes never
// point back at their parent.
type CategoryNode struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	ParentID *uuid.UUID      `json:"parent_id,omitempty"`
	Children []*CategoryNode `json:"children,omitempty"`
}

// BuildTree indexes the flat category list by id and attaches every category
// to its parent's children list. Categories that declare a parent id missing
// from the input are logged as orphans and excluded from the forest entirely
// (they become neither roots nor children). Runs in O(n).
func BuildTree(categories []models.Category) []*CategoryNode {
	index := make(map[uuid.UUID]*CategoryNode, len(categories))
	for _, cat := range categories {
		index[cat.ID] = &CategoryNode{
			ID:       cat.ID,
			Name:     cat.Name,
			ParentID: cat.ParentID,
		}
	}

	roots := make([]*CategoryNode, 0)
	for _, cat := range categories {
		node := index[cat.ID]
		if cat.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*cat.ParentID]
		if !ok {
			log.Printf("catalog: orphan category %s (%q) references missing parent %s, dropped from tree",
				cat.ID, cat.Name, *cat.ParentID)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}

// DescendantIDs returns rootID plus the id of every category reachable by
// following parent→child edges from rootID. The result always contains
// rootID, even when it has no children. A visited set guards traversal, so a
// malformed cyclic input visits each category at most once instead of
// recursing forever.
func DescendantIDs(rootID uuid.UUID, categories []models.Category) map[uuid.UUID]struct{} {
	children := make(map[uuid.UUID][]uuid.UUID, len(categories))
	for _, cat := range categories {
		if cat.ParentID != nil {
			children[*cat.ParentID] = append(children[*cat.ParentID], cat.ID)
		}
	}

	visited := map[uuid.UUID]struct{}{rootID: {}}
	stack := []uuid.UUID{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, childID := range children[id] {
			if _, seen := visited[childID]; seen {
				continue
			}
			visited[childID] = struct{}{}
			stack = append(stack, childID)
		}
	}

	return visited
}
