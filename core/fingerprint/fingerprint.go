// Package fingerprint computes deduplication hashes over normalized text.
//
// content_hash is a sha256 digest of the plain text with whitespace
// collapsed and case preserved: exact duplicates collide even across link
// and formatting variation.
//
// similarity_hash is an xxhash64 digest of the sorted unique lower-cased
// word set (punctuation stripped). Near-duplicate pages whose boilerplate is
// merely reordered collide; materially different word content does not.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/gaurav-prasanna/ragpipe/core"
	"github.com/gaurav-prasanna/ragpipe/core/mdtext"
)

// Generate computes both fingerprints for the given markdown.
func Generate(markdown string) core.Hashes {
	canonical := mdtext.CollapseWhitespace(mdtext.Strip(markdown))

	sum := sha256.Sum256([]byte(canonical))

	return core.Hashes{
		ContentHash:    hex.EncodeToString(sum[:]),
		SimilarityHash: similarityHash(canonical),
	}
}

// similarityHash hashes the sorted unique word set of the text.
func similarityHash(text string) string {
	folded := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, text)

	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.Fields(folded) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	sort.Strings(words)

	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(words, " ")))
}
