package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseInts reads integers separated by commas and/or whitespace.
func parseInts(text string) ([]int64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %v", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// joinInts renders seq comma-separated with no spaces.
func joinInts(seq []int64) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}

	return b.String()
}
