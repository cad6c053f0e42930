package morse_tree

// Wrapper around the message codec for morse messages that arrive reversed end
// to end, symbols as well as letter and word order. Decoding reverses the input
// before translating it and encoding reverses the produced morse message.

import (
	"context"
)

type ReversedCodec struct {
	codec *Codec
}

// Returns a new reversed codec around the given codec
// Arguments:
//
//	codec - message codec
//
// Returns:
//
//	*ReversedCodec - reversed message codec
func NewReversedCodec(codec *Codec) *ReversedCodec {
	return &ReversedCodec{
		codec: codec,
	}
}

// Decodes a morse message written back to front
// Arguments:
//
//	ctx     - context for the operation
//	message - reversed morse message
//
// Returns:
//
//	string - decoded text
//	error  - error, if any
func (rc *ReversedCodec) Decode(ctx context.Context, message string) (string, error) {
	return rc.codec.Decode(ctx, ReverseString(message))
}

// Encodes text into a morse message written back to front
// Arguments:
//
//	ctx  - context for the operation
//	text - text to be encoded
//
// Returns:
//
//	string - reversed morse message
//	error  - error, if any
func (rc *ReversedCodec) Encode(ctx context.Context, text string) (string, error) {
	message, err := rc.codec.Encode(ctx, text)
	if err != nil {
		return "", err
	}

	return ReverseString(message), nil
}
