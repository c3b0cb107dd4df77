// Package binding substitutes ${path.to.value} placeholders in text with
// values from a JSON-decoded data document.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${path} in text with the value found at that
// path in data. Paths use dot notation with optional [index] suffixes,
// e.g. ${user.name} or ${items[2].label}. A nil data document or an
// unresolvable path leaves the placeholder untouched.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

// splitSegment splits "items[2][0]" into its name and index parts.
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open == -1 {
		return segment, nil, true
	}
	name := segment[:open]
	var indexes []int
	rest := segment[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}
