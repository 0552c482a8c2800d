package aoc

import (
	"strings"

	"go4.org/mem"
	"golang.org/x/exp/constraints"
)

// Lines splits s into lines. A trailing "\r" is removed from each line and a
// final newline does not produce an empty last line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	out := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}

// Split trims surrounding whitespace from s and splits it on sep.
func Split(s, sep string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return Split(s, "\n\n")
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string {
	ms := mem.AppendFields(nil, mem.S(s))
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.StringCopy()
	}
	return out
}

// Values decodes each fragment as a base 10 integer. Fragments that are not
// integers, or do not fit in T, are dropped.
func Values[T constraints.Signed](frags []string) []T {
	return parseValues[T](frags, 10)
}

// Binaries is like Values but decodes base 2 fragments.
func Binaries[T constraints.Signed](frags []string) []T {
	return parseValues[T](frags, 2)
}

func parseValues[T constraints.Signed](frags []string, base int) []T {
	out := make([]T, 0, len(frags))
	for _, f := range frags {
		v, err := mem.ParseInt(mem.TrimSpace(mem.S(f)), base, 64)
		if err != nil || int64(T(v)) != v {
			continue
		}
		out = append(out, T(v))
	}
	return out
}
