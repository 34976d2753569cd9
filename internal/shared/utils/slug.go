package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// letters that do not decompose under NFD
var foldReplacer = strings.NewReplacer(
	"đ", "d", "Đ", "D",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
)

// RemoveDiacritics folds accented letters to their base form: "Nguyễn Ánh" → "Nguyen Anh".
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, foldReplacer.Replace(input))
	if err != nil {
		return input
	}
	return folded
}

// GenerateSlug lowercases, folds diacritics and collapses every
// non-alphanumeric run into a single hyphen.
// "Hello, World! 2024" → "hello-world-2024"
func GenerateSlug(input string) string {
	lower := strings.ToLower(RemoveDiacritics(input))
	return strings.Trim(nonAlphanumeric.ReplaceAllString(lower, "-"), "-")
}

// SlugWithSuffix returns base for n <= 1, otherwise base-n.
func SlugWithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
