package utils

import (
	"strings"
	"sync"
)

// StringBuilderPool provides a pool of string builders to reduce allocations
// when building query keys and joining fragments.
var StringBuilderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// BuildString builds a string from multiple parts using a pooled string builder.
func BuildString(parts ...string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	builder := StringBuilderPool.Get().(*strings.Builder)
	defer func() {
		builder.Reset()
		StringBuilderPool.Put(builder)
	}()

	for _, part := range parts {
		builder.WriteString(part)
	}
	return builder.String()
}

// JoinNonEmpty joins the non-empty parts with separator.
// Empty parts are dropped so the result never holds doubled, leading or trailing separators.
func JoinNonEmpty(separator string, parts ...string) string {
	builder := StringBuilderPool.Get().(*strings.Builder)
	defer func() {
		builder.Reset()
		StringBuilderPool.Put(builder)
	}()

	for _, part := range parts {
		if part == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString(separator)
		}
		builder.WriteString(part)
	}
	return builder.String()
}
