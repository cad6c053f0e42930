package morse_tree

import (
	"context"
)

func isAlnum(character rune) bool {
	return ('0' <= character && character <= '9') ||
		('a' <= character && character <= 'z') ||
		('A' <= character && character <= 'Z')
}

func toUpper(character rune) rune {
	if 'a' <= character && character <= 'z' {
		return character - ('a' - 'A')
	}

	return character
}

// Looks up the character stored at the path spelled by code
// Arguments:
//
//	ctx  - context for the operation
//	code - morse code made of dots and dashes
//
// Returns:
//
//	OpResult - Match if an assigned node was found, NoMatch otherwise
//	rune     - decoded character, if any
//	error    - error, if any
func (t *Tree) DecodeLetter(ctx context.Context, code string) (OpResult, rune, error) {
	if !t.isValid() {
		return Error, 0, ErrInvalidMorseTree
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.decodeLetter(code)
}

// Caller must lock
func (t *Tree) decodeLetter(code string) (OpResult, rune, error) {
	node := t.root
	for i := 0; i < len(code); i++ {
		node = node.child(code[i])
		if nil == node {
			return NoMatch, 0, ErrCodeNotFound
		}
	}

	if !node.isTerminal() {
		return NoMatch, 0, ErrCodeNotFound
	}

	return Match, node.character, nil
}

// Finds the morse code of the given character
// Lower case letters are looked up as upper case.
// The tree is searched breadth first, dots before dashes.
// Arguments:
//
//	ctx       - context for the operation
//	character - ASCII letter or digit
//
// Returns:
//
//	OpResult - Match if the character was found, NoMatch otherwise
//	string   - morse code, if found
//	error    - error, if any
func (t *Tree) EncodeLetter(ctx context.Context, character rune) (OpResult, string, error) {
	if !t.isValid() {
		return Error, "", ErrInvalidMorseTree
	}

	if !isAlnum(character) {
		return Error, "", ErrInvalidCharacter
	}

	t.rlock(ctx)
	defer t.runlock(ctx)

	return t.encodeLetter(toUpper(character))
}

// Caller must lock
func (t *Tree) encodeLetter(character rune) (OpResult, string, error) {
	queue := NewQueue[pathEntry]()
	queue.Enqueue(pathEntry{node: t.root})

	for !queue.IsEmpty() {
		current, _ := queue.Dequeue()

		node := current.node
		if node.isTerminal() && node.character == character {
			return Match, current.code, nil
		}

		if nil != node.left {
			queue.Enqueue(current.dotChild())
		}

		if nil != node.right {
			queue.Enqueue(current.dashChild())
		}
	}

	return NoMatch, "", ErrCharacterNotFound
}
