package morse_tree

// Wrapper around the morse tree to translate whole messages. Letters are separated
// by a single space and words by a '/'. The tree is only read, so a populated tree
// can back any number of codecs.

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

var (
	_ MessageCodec = (*Codec)(nil)
	_ MessageCodec = (*ReversedCodec)(nil)
)

type Codec struct {
	tree           *Tree
	bufferCapacity int
	logger         zerolog.Logger
}

type CodecOption func(*Codec)

// WithBufferCapacity sets the initial capacity of output buffers.
func WithBufferCapacity(capacity int) CodecOption {
	return func(c *Codec) {
		if capacity > 0 {
			c.bufferCapacity = capacity
		}
	}
}

func WithLogger(logger zerolog.Logger) CodecOption {
	return func(c *Codec) {
		c.logger = logger
	}
}

// Returns a new codec backed by the given tree
// Arguments:
//
//	tree - populated morse tree
//	opts - codec options
//
// Returns:
//
//	*Codec - message codec
func NewCodec(tree *Tree, opts ...CodecOption) *Codec {
	c := &Codec{
		tree:           tree,
		bufferCapacity: defaultBufferCapacity,
		logger:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Returns a new codec backed by a tree populated with the default alphabet
// Arguments:
//
//	ctx  - context for the operation
//	opts - codec options
//
// Returns:
//
//	*Codec - message codec
//	error  - error, if any
func NewDefaultCodec(ctx context.Context, opts ...CodecOption) (*Codec, error) {
	tree, err := NewDefaultTree(ctx)
	if err != nil {
		return nil, err
	}

	c := NewCodec(tree, opts...)
	tree.SetLogger(c.logger)
	return c, nil
}

// Tree returns the tree backing the codec.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Close destroys the backing tree.
func (c *Codec) Close(ctx context.Context) {
	if nil != c {
		c.tree.Destroy(ctx)
	}
}

// Decodes a morse message into text
// Unknown letter codes decode to '?'.
// Arguments:
//
//	ctx     - context for the operation
//	message - morse message, letters separated by spaces and words by '/'
//
// Returns:
//
//	string - decoded text
//	error  - error, if any
func (c *Codec) Decode(ctx context.Context, message string) (string, error) {
	if nil == c || !c.tree.isValid() {
		return "", ErrInvalidMorseTree
	}

	c.tree.rlock(ctx)
	defer c.tree.runlock(ctx)

	out := newOutputBuffer(c.bufferCapacity)

	first := true
	for pos := 0; pos < len(message); {
		end := strings.IndexByte(message[pos:], WordSeparator)
		if end < 0 {
			end = len(message)
		} else {
			end += pos
		}

		if !first {
			out.appendByte(LetterGap)
		}
		first = false

		segment := strings.Trim(message[pos:end], string(LetterGap))
		for _, token := range strings.Split(segment, string(LetterGap)) {
			if token == "" {
				continue
			}

			res, character, _ := c.tree.decodeLetter(token)
			if res != Match {
				c.logger.Debug().Str("code", token).Msg("unknown morse code")
				character = Unknown
			}

			out.appendRune(character)
		}

		pos = end
		if pos < len(message) && message[pos] == WordSeparator {
			pos++
		}
	}

	out.trimTrailing(LetterGap)
	return out.String(), nil
}

// Encodes text into a morse message
// Spaces become word separators and characters other than ASCII letters and
// digits are dropped.
// Arguments:
//
//	ctx  - context for the operation
//	text - text to be encoded
//
// Returns:
//
//	string - morse message
//	error  - error, if any
func (c *Codec) Encode(ctx context.Context, text string) (string, error) {
	if nil == c || !c.tree.isValid() {
		return "", ErrInvalidMorseTree
	}

	c.tree.rlock(ctx)
	defer c.tree.runlock(ctx)

	out := newOutputBuffer(c.bufferCapacity)

	for _, character := range text {
		if character == LetterGap {
			out.appendByte(WordSeparator)
			out.appendByte(LetterGap)
			continue
		}

		if !isAlnum(character) {
			continue
		}

		res, code, _ := c.tree.encodeLetter(toUpper(character))
		if res != Match {
			c.logger.Debug().Str("character", string(character)).Msg("character missing from morse tree")
			out.appendByte(Unknown)
			continue
		}

		out.appendString(code)
		out.appendByte(LetterGap)
	}

	out.trimTrailing(LetterGap)
	return out.String(), nil
}
