package morse_tree

import (
	"context"
)

// International morse codes for the latin letters and the arabic digits.
var defaultTable = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
}

// DefaultTable returns a copy of the fixed alphabet, letters first.
func DefaultTable() []Entry {
	table := make([]Entry, len(defaultTable))
	copy(table, defaultTable)
	return table
}

// NewDefaultTree returns a tree populated with DefaultTable.
func NewDefaultTree(ctx context.Context) (*Tree, error) {
	t := NewTree()
	if err := t.Populate(ctx, defaultTable); err != nil {
		t.Destroy(ctx)
		return nil, err
	}

	return t, nil
}
