package result

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags flattens an evidence snippet to plain text. Backend snippets
// come from scraped news pages and occasionally carry markup fragments.
func StripTags(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
