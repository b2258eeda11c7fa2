package view

import (
	"sort"

	"github.com/campanhas/campaigns-backend/internal/model"
)

// MaxReplyDepth caps how deep a comment thread nests when rendered. The data
// layer stores arbitrary parent chains; the cap lives here only.
const MaxReplyDepth = 3

// BuildThread arranges a flat comment list into a reply tree. A parent→children
// index is built once per call instead of rescanning the list per node.
// Replies whose parent no longer exists are promoted to top level so deleting
// a comment never hides its replies. Nodes at the depth cap receive all of
// their remaining descendants as a flat reply list. The input comments are not
// mutated; the returned tree holds shallow copies.
func BuildThread(comments []*model.Comment) []*model.Comment {
	byID := make(map[string]*model.Comment, len(comments))
	children := make(map[string][]*model.Comment, len(comments))

	for _, c := range comments {
		cp := *c
		cp.Replies = nil
		byID[cp.ID] = &cp
	}
	var roots []*model.Comment
	for _, c := range comments {
		node := byID[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if _, ok := byID[*c.ParentID]; !ok {
			// orphaned reply, parent was deleted
			roots = append(roots, node)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], node)
	}

	sortByCreated(roots)
	for _, kids := range children {
		sortByCreated(kids)
	}

	for _, root := range roots {
		attach(root, 1, children)
	}
	return roots
}

func attach(node *model.Comment, depth int, children map[string][]*model.Comment) {
	if depth >= MaxReplyDepth {
		node.Replies = descendants(node.ID, children)
		return
	}
	node.Replies = children[node.ID]
	for _, kid := range node.Replies {
		attach(kid, depth+1, children)
	}
}

// descendants flattens the whole subtree below id in created-at order.
func descendants(id string, children map[string][]*model.Comment) []*model.Comment {
	var out []*model.Comment
	for _, kid := range children[id] {
		out = append(out, kid)
		out = append(out, descendants(kid.ID, children)...)
	}
	sortByCreated(out)
	return out
}

func sortByCreated(comments []*model.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
