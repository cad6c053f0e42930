package morse_tree

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

var _ MorseTree = (*Tree)(nil)

// Tree is a binary trie keyed by morse symbols.
// A dot descends to the left child, a dash to the right child.
type Tree struct {
	root     *treeNode
	numNodes uint64

	rlockFn   ReadLockFn
	runlockFn ReadUnlockFn
	wlockFn   WriteLockFn
	unlockFn  UnlockFn

	logger zerolog.Logger
}

// Returns a new morse tree holding a single unassigned root
// Returns:
//
//	*Tree - morse tree
func NewTree() *Tree {
	return &Tree{
		root:     newNode(),
		numNodes: 1,
		logger:   zerolog.Nop(),
	}
}

// Returns a new morse tree with custom lock handlers
// Arguments:
//
//	rlockFn   - read lock function
//	runlockFn - read unlock function
//	wlockFn   - write lock function
//	unlockFn  - unlock function
//
// Returns:
//
//	*Tree - morse tree
func NewTreeWithLockHandlers(rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn) *Tree {
	t := NewTree()
	t.rlockFn = rlockFn
	t.runlockFn = runlockFn
	t.wlockFn = wlockFn
	t.unlockFn = unlockFn
	return t
}

// Init is an alias of NewTree.
func Init() *Tree {
	return NewTree()
}

// SetLogger replaces the tree's logger. The default logger discards everything.
func (t *Tree) SetLogger(logger zerolog.Logger) {
	if nil != t {
		t.logger = logger
	}
}

func (t *Tree) rlock(ctx context.Context) {
	if nil == t || nil == t.rlockFn {
		return
	}

	t.rlockFn(ctx)
}

func (t *Tree) runlock(ctx context.Context) {
	if nil == t || nil == t.runlockFn {
		return
	}

	t.runlockFn(ctx)
}

func (t *Tree) wlock(ctx context.Context) {
	if nil == t || nil == t.wlockFn {
		return
	}

	t.wlockFn(ctx)
}

func (t *Tree) unlock(ctx context.Context) {
	if nil == t || nil == t.unlockFn {
		return
	}

	t.unlockFn(ctx)
}

func (t *Tree) isValid() bool {
	return nil != t && nil != t.root
}

func validateCode(code string) error {
	for i := 0; i < len(code); i++ {
		if code[i] != Dot && code[i] != Dash {
			return fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidCode, code[i], i, code)
		}
	}

	return nil
}

// Inserts the given character into the tree at the path spelled by code
// Re-inserting an existing code overwrites the stored character.
// Arguments:
//
//	ctx       - context for the operation
//	code      - morse code made of dots and dashes
//	character - character to be stored at the end of the path
//
// Returns:
//
//	OpResult - Ok for a new assignment, Dup when an assignment was overwritten
//	error    - error, if any
func (t *Tree) Insert(ctx context.Context, code string, character rune) (OpResult, error) {
	if !t.isValid() {
		return Error, ErrInvalidMorseTree
	}

	if err := validateCode(code); err != nil {
		return Error, err
	}

	t.wlock(ctx)
	defer t.unlock(ctx)

	node := t.root
	for i := 0; i < len(code); i++ {
		next := node.child(code[i])
		if nil == next {
			next = newNode()
			if Dot == code[i] {
				node.left = next
			} else {
				node.right = next
			}

			t.numNodes++
		}

		node = next
	}

	res := Ok
	if node.isTerminal() {
		t.logger.Debug().
			Str("code", code).
			Str("previous", string(node.character)).
			Str("character", string(character)).
			Msg("overwriting morse code assignment")
		res = Dup
	}

	node.saveAndMarkTerminal(character)
	return res, nil
}

// Inserts every entry into the tree
// Arguments:
//
//	ctx     - context for the operation
//	entries - (character, code) pairs
//
// Returns:
//
//	error - first insert error, if any
func (t *Tree) Populate(ctx context.Context, entries []Entry) error {
	for _, entry := range entries {
		if _, err := t.Insert(ctx, entry.Code, entry.Character); err != nil {
			return fmt.Errorf("populate %q: %w", string(entry.Character), err)
		}
	}

	t.logger.Debug().
		Int("entries", len(entries)).
		Uint64("nodes", t.GetNodesCount()).
		Msg("populated morse tree")
	return nil
}

// Releases all nodes of the tree, children before parents.
// The tree is unusable afterwards. Destroying a destroyed tree does nothing.
// Arguments:
//
//	ctx - context for the operation
func (t *Tree) Destroy(ctx context.Context) {
	if !t.isValid() {
		return
	}

	t.wlock(ctx)
	defer t.unlock(ctx)

	released := t.release(t.root)
	t.root = nil

	t.logger.Debug().
		Uint64("released", released).
		Uint64("remaining", t.numNodes).
		Msg("destroyed morse tree")
}

// Caller must lock
func (t *Tree) release(node *treeNode) uint64 {
	if nil == node {
		return 0
	}

	released := uint64(0)
	if !node.isLeaf() {
		released = t.release(node.left) + t.release(node.right)
	}

	node.left = nil
	node.right = nil
	node.unmarkTerminal()
	t.numNodes--

	return released + 1
}

// Returns the number of nodes in the morse tree
// Returns:
//
//	uint64 - number of nodes in the tree
func (t *Tree) GetNodesCount() uint64 {
	if nil == t {
		return 0
	}

	return t.numNodes
}
