package cppast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the shallow C++ AST. The set is deliberately coarse: the
// transformation rules only need to distinguish translation units and
// namespaces; everything else exists so dumps and traversal remain useful.
const (
	NodeTranslationUnit NodeKind = iota
	NodeNamespace
	NodeClass
	NodeStruct
	NodeUnion
	NodeEnum
	NodeFunction
	NodeUsing
	NodeMacro
	NodeDecl
)

// String returns a stable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeTranslationUnit:
		return "TranslationUnit"
	case NodeNamespace:
		return "Namespace"
	case NodeClass:
		return "Class"
	case NodeStruct:
		return "Struct"
	case NodeUnion:
		return "Union"
	case NodeEnum:
		return "Enum"
	case NodeFunction:
		return "Function"
	case NodeUsing:
		return "Using"
	case NodeMacro:
		return "Macro"
	case NodeDecl:
		return "Decl"
	default:
		return "Unknown"
	}
}

// Node is a single node in the parser-supplied AST. The tree is owned by the
// translation unit for one parse generation and is never mutated in place.
type Node struct {
	// Kind identifies what this node represents.
	Kind NodeKind

	// Spelling is the declared name, when the node has one (a namespace or
	// class name). Empty for anonymous constructs.
	Spelling string

	// Range is the byte extent of the whole declaration in its file.
	Range ByteRange

	// File is the path of the file this node was parsed from. Nodes pulled in
	// from included headers carry that header's path.
	File string

	// Children are the directly nested declarations, in source order.
	Children []*Node
}

// HasChildren returns true if the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// OnlyChild returns the node's single child, or nil when the node has zero or
// more than one child.
func (n *Node) OnlyChild() *Node {
	if len(n.Children) != 1 {
		return nil
	}
	return n.Children[0]
}

// QualifiedName reconstructs the full segmented name of a namespace
// declaration. A declaration like `namespace A::B::C { }` is represented as
// three nested single-child namespace nodes sharing one closing brace; this
// collapses the chain back into "A::B::C".
//
// The chain is followed only while the node has exactly one child, the child
// is itself a namespace, and the child's extent ends at exactly the same
// offset as the current node's extent.
func QualifiedName(node *Node) string {
	name := node.Spelling
	end := node.Range.End
	for {
		child := node.OnlyChild()
		if child == nil || child.Kind != NodeNamespace || child.Range.End != end {
			return name
		}
		name += "::" + child.Spelling
		node = child
	}
}
