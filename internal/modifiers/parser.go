package modifiers

import (
	"fmt"
	"strings"

	"tglauncher/internal/faults"
)

// Block is one parsed entry of a fragment: an id and its body. The body of
// a braced block keeps its interior newlines.
type Block struct {
	// ID is the key left of the first '='.
	ID string
	// Body is everything right of the '=', brace blocks included.
	Body string
	// Line is the 1-based line the block starts on.
	Line int
}

// ParseFragment parses event_modifiers.txt content. Lines are key=value;
// '#' starts a comment; a value containing '{' continues until the braces
// balance. Blocks are returned in file order. An unbalanced block is a
// parse error naming its starting line.
func ParseFragment(content []byte) ([]Block, error) {
	lines := strings.Split(string(content), "\n")
	var blocks []Block
	for i := 0; i < len(lines); i++ {
		s := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		idx := strings.IndexByte(s, '=')
		if idx < 0 {
			continue
		}

		start := i + 1
		id := strings.TrimSpace(s[:idx])
		value := strings.TrimSpace(s[idx+1:])
		if strings.Contains(value, "{") {
			depth := strings.Count(value, "{") - strings.Count(value, "}")
			for depth > 0 && i+1 < len(lines) {
				i++
				next := strings.TrimSuffix(lines[i], "\r")
				value += "\n" + next
				depth += strings.Count(next, "{") - strings.Count(next, "}")
			}
			if depth > 0 {
				return nil, faults.Wrap(faults.ErrParse, component, "parse fragment",
					fmt.Sprintf("unbalanced braces in block %q starting at line %d", id, start), nil)
			}
			value = strings.TrimSpace(value)
		}

		blocks = append(blocks, Block{ID: id, Body: value, Line: start})
	}
	return blocks, nil
}
