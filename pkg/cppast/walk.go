package cppast

// VisitResult controls traversal from a visit callback.
type VisitResult uint8

const (
	// Descend continues the traversal into the node's children.
	Descend VisitResult = iota

	// Prune skips the node's children but continues with its siblings.
	Prune

	// Halt stops the entire traversal immediately; no further nodes are
	// visited.
	Halt
)

// VisitFunc is called for each node during a Walk. Its result decides whether
// the node's children are visited, skipped, or the walk stops outright.
type VisitFunc func(n *Node) VisitResult

// Walk performs a pre-order traversal of the AST starting at root. The
// callback's VisitResult governs descent; returning Halt stops the walk for
// the whole tree, not just the current subtree.
func Walk(root *Node, visit VisitFunc) {
	if root == nil {
		return
	}
	walk(root, visit)
}

// walk returns true when the traversal must halt.
func walk(n *Node, visit VisitFunc) bool {
	switch visit(n) {
	case Halt:
		return true
	case Prune:
		return false
	}
	for _, child := range n.Children {
		if walk(child, visit) {
			return true
		}
	}
	return false
}

// WalkFile traverses like Walk but skips any node whose File differs from
// file: such nodes are neither visited nor descended into. Used to ignore
// content pulled in from included headers when a rule operates only on the
// unit's primary file.
func WalkFile(root *Node, file string, visit VisitFunc) {
	Walk(root, func(n *Node) VisitResult {
		if n.File != "" && n.File != file {
			return Prune
		}
		return visit(n)
	})
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	Walk(root, func(n *Node) VisitResult {
		if predicate(n) {
			result = append(result, n)
		}
		return Descend
	})
	return result
}

// FindFirst returns the first node matching the predicate, or nil.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node
	Walk(root, func(n *Node) VisitResult {
		if predicate(n) {
			found = n
			return Halt
		}
		return Descend
	})
	return found
}

// FindByKind returns all nodes of the given kind, in pre-order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
