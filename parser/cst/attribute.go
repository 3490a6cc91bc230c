package cst

// Attribute assigns spans and IDs to all nodes of the given trees in a
// single recursive pass. Spans are byte offsets into the source the trees
// were parsed from; IDs are assigned in depth-first order. The parser calls
// this right after parsing, so consumers always see attributed trees.
func Attribute(roots []Node) {
	a := attributer{}
	for _, root := range roots {
		a.attribute(root)
	}
}

type attributer struct {
	offset uint32
	nextID ID
}

func (a *attributer) attribute(node Node) {
	start := a.offset
	node.setID(a.nextID)
	a.nextID++

	switch node := node.(type) {
	case *Comment:
		a.attribute(node.Octothorpe)
		a.offset += uint32(len(node.Text))
	default:
		if children := node.Children(); children != nil {
			for _, child := range children {
				a.attribute(child)
			}
		} else {
			a.offset += uint32(len(node.String()))
		}
	}

	node.setSpan(Span{Start: start, End: a.offset})
}
