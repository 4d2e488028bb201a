package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON object or array out of raw LLM output. Models
// wrap answers in code fences or chat around them, and the prose can itself
// contain brackets ("Pilihan [1]: ..."), so every balanced candidate is
// checked and the longest one that is actually valid JSON wins.
func ExtractJSON(raw string) (string, error) {
	best := ""
	sawOpener := false

	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' && raw[i] != '[' {
			continue
		}
		sawOpener = true

		end, ok := balancedEnd(raw, i)
		if !ok {
			continue
		}

		candidate := raw[i : end+1]
		if json.Valid([]byte(candidate)) {
			if len(candidate) > len(best) {
				best = candidate
			}
			// Openers inside an accepted candidate are its own structure,
			// not new candidates.
			i = end
		}
	}

	if best != "" {
		return best, nil
	}
	if !sawOpener {
		return "", fmt.Errorf("%w: no JSON object found in %q", ErrInvalidJSON, truncate(raw, 80))
	}
	return "", fmt.Errorf("%w: no valid JSON in %q", ErrInvalidJSON, truncate(raw, 80))
}

// balancedEnd scans from the opener at start to its matching closer,
// ignoring brackets inside string literals.
func balancedEnd(raw string, start int) (int, bool) {
	open := raw[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
