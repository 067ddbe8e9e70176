package models

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes markup from s and returns the remaining text, so
// "<script>pending</script>" becomes "pending". Values without any '<'
// are returned as-is.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}
