package morse_tree

// treeNode represents a node in the morse tree.
// left is reached by a dot, right by a dash.
type treeNode struct {
	right *treeNode
	left  *treeNode

	terminal  bool
	character rune
}

func newNode() *treeNode {
	return &treeNode{terminal: false}
}

func (node *treeNode) isLeaf() bool {
	return nil != node && nil == node.right && nil == node.left
}

func (node *treeNode) isTerminal() bool {
	return nil != node && node.terminal
}

func (node *treeNode) markTerminal() {
	if nil != node {
		node.terminal = true
	}
}

func (node *treeNode) unmarkTerminal() {
	if nil != node {
		node.terminal = false
		node.character = 0
	}
}

func (node *treeNode) saveAndMarkTerminal(character rune) {
	node.character = character
	node.markTerminal()
}

// child returns the node reached from node by the given symbol.
func (node *treeNode) child(symbol byte) *treeNode {
	if nil == node {
		return nil
	}

	switch symbol {
	case Dot:
		return node.left
	case Dash:
		return node.right
	}

	return nil
}

// pathEntry pairs a node with the code accumulated on the way to it.
// Used as the payload of the traversal stack and queue.
type pathEntry struct {
	node *treeNode
	code string
}

func (pe pathEntry) dotChild() pathEntry {
	return pathEntry{node: pe.node.left, code: pe.code + string(Dot)}
}

func (pe pathEntry) dashChild() pathEntry {
	return pathEntry{node: pe.node.right, code: pe.code + string(Dash)}
}
