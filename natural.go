package rovat

import (
	"sort"
	"strings"
)

// NaturalLess reports whether a sorts before b under natural ordering: runs
// of digits compare by numeric value, everything else compares
// case-insensitively. Page filenames carry variable-width page numbers, so
// "page_9" must sort before "page_10".
func NaturalLess(a, b string) bool { return naturalCompare(a, b) < 0 }

// OrderPages sorts files into natural page order by ID, in place.
// Returns ECONFLICT when two distinct filenames produce identical natural
// keys (e.g. "page_7" and "page_07"): the engine cannot guarantee section
// continuity without a total page order, so it refuses to guess.
func OrderPages(files []PageFile) error {
	sort.SliceStable(files, func(i, j int) bool {
		return naturalCompare(files[i].ID, files[j].ID) < 0
	})
	for i := 1; i < len(files); i++ {
		prev, cur := files[i-1].ID, files[i].ID
		if prev != cur && naturalCompare(prev, cur) == 0 {
			return Errorf(ECONFLICT, "page order is ambiguous: %q and %q are numerically indistinguishable", prev, cur)
		}
	}
	return nil
}

func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		aTok, aNum, aRest := nextToken(a)
		bTok, bNum, bRest := nextToken(b)
		switch {
		case aNum && bNum:
			if c := compareNumeric(aTok, bTok); c != 0 {
				return c
			}
		case aNum != bNum:
			// A digit run sorts before text at the same position.
			if aNum {
				return -1
			}
			return 1
		default:
			if c := strings.Compare(strings.ToLower(aTok), strings.ToLower(bTok)); c != 0 {
				return c
			}
		}
		a, b = aRest, bRest
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextToken splits off the leading run of ASCII digits or non-digits.
func nextToken(s string) (tok string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}
	numeric = isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != numeric {
			return s[:i], numeric, s[i:]
		}
	}
	return s, numeric, ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// compareNumeric compares two digit runs by value without integer
// conversion, so arbitrarily long page tokens cannot overflow: strip
// leading zeros, then compare by length and lexicographically.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
