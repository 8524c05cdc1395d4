package symmetry

import "strings"

// ReferenceIdentifiers picks the reference axis labels for a cell: given
// the full list of symmetry strings, pick the first entry
// whose tokens contain no operator characters (+, −, /), split it on comma
// or semicolon, and require exactly three non-empty identifier tokens.
// Otherwise return DefaultIdentifiers.
func ReferenceIdentifiers(ops []string) [3]string {
	for _, op := range ops {
		if strings.ContainsAny(op, "+-/") {
			continue
		}
		parts := strings.FieldsFunc(op, func(r rune) bool { return r == ',' || r == ';' })
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 3 {
			return [3]string{trimmed[0], trimmed[1], trimmed[2]}
		}
	}

	return DefaultIdentifiers
}
