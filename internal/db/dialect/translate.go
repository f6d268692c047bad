package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// rewriteOrdinals converts $1-style ordinal placeholders to SQLite's ?
// placeholders, emitting arguments in occurrence order. A repeated ordinal
// duplicates its argument. Text inside single-quoted literals is left alone.
func rewriteOrdinals(query string, args []any) (string, []any, error) {
	var sb strings.Builder
	sb.Grow(len(query))

	out := make([]any, 0, len(args))
	inLiteral := false

	for i := 0; i < len(query); i++ {
		c := query[i]

		if c == '\'' {
			inLiteral = !inLiteral
			sb.WriteByte(c)
			continue
		}
		if c != '$' || inLiteral {
			sb.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if j == i+1 {
			// Bare $, not a placeholder.
			sb.WriteByte(c)
			continue
		}

		n, err := strconv.Atoi(query[i+1 : j])
		if err != nil || n < 1 || n > len(args) {
			return "", nil, fmt.Errorf("placeholder $%s out of range (%d args)", query[i+1:j], len(args))
		}

		out = append(out, args[n-1])
		sb.WriteByte('?')
		i = j - 1
	}

	return sb.String(), out, nil
}

// coerceBools maps boolean parameters to 0/1 for the embedded backend, which
// has no native boolean type. All other values pass through unchanged.
func coerceBools(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case bool:
			out[i] = boolToInt(v)
		case *bool:
			if v == nil {
				out[i] = nil
			} else {
				out[i] = boolToInt(*v)
			}
		default:
			out[i] = a
		}
	}
	return out
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// stripRowLocks drops FOR UPDATE clauses for the embedded backend, which has
// no row-level locks: the single-writer transaction already holds the
// database write lock.
func stripRowLocks(query string) string {
	return strings.ReplaceAll(query, " FOR UPDATE", "")
}
