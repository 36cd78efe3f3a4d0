package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/gemsearch/internal/domain"
)

// Validate performs the syntactic checks applied before any subprocess work.
// The query is not modified; callers keep using the original string as the cache key.
func Validate(query string) error {
	if strings.TrimSpace(query) == "" {
		return domain.NewSearchError(domain.KindInvalidQuery, "query must not be empty", nil)
	}
	if n := utf8.RuneCountInString(query); n > domain.MaxQueryLength {
		return domain.NewSearchError(domain.KindInvalidQuery,
			fmt.Sprintf("query is %d characters long, maximum is %d", n, domain.MaxQueryLength), nil)
	}
	return nil
}
