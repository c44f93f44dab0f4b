package wikitext

// Children returns the nodes nested directly inside n, in source order.
// Grouping structures (list items, table rows, cells, captions, template
// parameters) are flattened; callers that need the grouping switch on the
// concrete node types instead.
//
//nolint:revive // function-length,cognitive-complexity: exhaustive switch
// over all composite node types
func Children(n Node) []Node {
	switch node := n.(type) {
	case *NodeHeading:
		return node.nodes
	case *NodePreformatted:
		return node.nodes
	case *NodeOrderedList:
		var children []Node
		for i := range node.items {
			children = append(children, node.items[i].nodes...)
		}

		return children
	case *NodeUnorderedList:
		var children []Node
		for i := range node.items {
			children = append(children, node.items[i].nodes...)
		}

		return children
	case *NodeDefinitionList:
		var children []Node
		for i := range node.items {
			children = append(children, node.items[i].nodes...)
		}

		return children
	case *NodeExternalLink:
		return node.nodes
	case *NodeLink:
		return node.text
	case *NodeImage:
		return node.text
	case *NodeCategory:
		return node.ordinal
	case *NodeTemplate:
		children := append([]Node(nil), node.name...)
		for i := range node.parameters {
			children = append(children, node.parameters[i].name...)
			children = append(children, node.parameters[i].value...)
		}

		return children
	case *NodeParameter:
		children := append([]Node(nil), node.name...)
		children = append(children, node.def...)

		return children
	case *NodeTag:
		return node.nodes
	case *NodeTable:
		children := append([]Node(nil), node.attributes...)
		for i := range node.captions {
			children = append(children, node.captions[i].attributes...)
			children = append(children, node.captions[i].content...)
		}
		for i := range node.rows {
			children = append(children, node.rows[i].attributes...)
			for j := range node.rows[i].cells {
				cell := &node.rows[i].cells[j]
				children = append(children, cell.attributes...)
				children = append(children, cell.content...)
			}
		}

		return children
	default:
		return nil
	}
}

// Walk visits n and every node nested inside it in pre-order. Returning
// false from visit stops the walk.
func Walk(n Node, visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range Children(n) {
		if !Walk(child, visit) {
			return false
		}
	}

	return true
}
