package morse_tree

import (
	"context"
	"errors"
)

type OpResult int

const (
	Error OpResult = iota
	Ok
	Dup
	Match
	NoMatch
)

func (r OpResult) String() string {
	switch r {
	case Error:
		return "Error"
	case Ok:
		return "Ok"
	case Dup:
		return "Dup"
	case Match:
		return "Match"
	case NoMatch:
		return "NoMatch"
	}

	return "Unknown"
}

type ReadLockFn func(context.Context)
type ReadUnlockFn func(context.Context)
type WriteLockFn func(context.Context)
type UnlockFn func(context.Context)

// Entry pairs a character with its Morse code.
type Entry struct {
	Character rune
	Code      string
}

type WalkerFn func(context.Context, Entry) error

// MorseTree is the set of operations supported by the dot/dash trie.
type MorseTree interface {
	Insert(context.Context, string, rune) (OpResult, error)
	DecodeLetter(context.Context, string) (OpResult, rune, error)
	EncodeLetter(context.Context, rune) (OpResult, string, error)
	Walk(context.Context, WalkerFn) error
	Destroy(context.Context)
	GetNodesCount() uint64
}

// MessageCodec translates whole messages.
type MessageCodec interface {
	Encode(context.Context, string) (string, error)
	Decode(context.Context, string) (string, error)
}

const (
	Dot           = '.'
	Dash          = '-'
	LetterGap     = ' '
	WordSeparator = '/'
	Unknown       = '?'
)

var (
	ErrInvalidMorseTree    = errors.New("invalid morse tree")
	ErrInvalidCode         = errors.New("invalid morse code")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrCodeNotFound        = errors.New("code not found")
	ErrCharacterNotFound   = errors.New("character not found")
	ErrNoWalkerFunction    = errors.New("no walker function provided")
	ErrInvalidMorseMessage = errors.New("morse message contains invalid characters")
)
