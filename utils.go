package morse_tree

// IsValidMorseMessage reports whether message only holds dots, dashes,
// letter gaps and word separators. An empty message is valid.
// Well-formedness, such as doubled separators, is not checked.
func IsValidMorseMessage(message string) bool {
	for i := 0; i < len(message); i++ {
		switch message[i] {
		case Dot, Dash, LetterGap, WordSeparator:
		default:
			return false
		}
	}

	return true
}

// Reverses a string
// Arguments:
//
//	s - string to be reversed
//
// Returns:
//
//	string - reversed string
func ReverseString(s string) string {
	// A rune slice is needed to properly handle multi-byte characters
	sr := []rune(s)
	for i, j := 0, len(sr)-1; i < j; i, j = i+1, j-1 {
		sr[i], sr[j] = sr[j], sr[i]
	}

	return string(sr)
}
