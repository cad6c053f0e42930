package morse_tree

import (
	"context"
)

// Walk the tree depth first and call passed function for every assigned node.
// Dot subtrees are visited before dash subtrees.
// Arguments:
//
//	ctx      - context for the operation
//	callback - function to be called for every (character, code) pair in the tree
//
// Returns:
//
//	error - nil if successful, the callback's error or the context's error otherwise
func (t *Tree) Walk(ctx context.Context, callback WalkerFn) error {
	if !t.isValid() {
		return ErrInvalidMorseTree
	}

	if nil == callback {
		return ErrNoWalkerFunction
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	stack := NewStack[pathEntry]()
	stack.Push(pathEntry{node: t.root})

	for !stack.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}

		current, _ := stack.Pop()

		node := current.node
		if node.isTerminal() {
			if err := callback(ctx, Entry{Character: node.character, Code: current.code}); err != nil {
				return err
			}
		}

		// Push dash first so the dot subtree is processed first
		if nil != node.right {
			stack.Push(current.dashChild())
		}

		if nil != node.left {
			stack.Push(current.dotChild())
		}
	}

	return nil
}

// Dictionary returns every (character, code) pair in walk order.
func (t *Tree) Dictionary(ctx context.Context) ([]Entry, error) {
	entries := make([]Entry, 0, len(defaultTable))

	err := t.Walk(ctx, func(_ context.Context, entry Entry) error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
