package cst

// Walk traverses the tree rooted at node in depth-first order, calling fn
// for every node. If fn returns false for a node, its children are skipped.
func Walk(node Node, fn func(Node) bool) {
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}

// WalkAll traverses multiple trees in order.
func WalkAll(roots []Node, fn func(Node) bool) {
	for _, root := range roots {
		Walk(root, fn)
	}
}

// Errors collects all Error leaves of the given trees in source order.
// Downstream passes elevate them to diagnostics using their spans.
func Errors(roots []Node) []*Error {
	var errors []*Error
	WalkAll(roots, func(node Node) bool {
		if err, ok := node.(*Error); ok {
			errors = append(errors, err)
		}
		return true
	})
	return errors
}
