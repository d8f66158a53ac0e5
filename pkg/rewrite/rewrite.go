package rewrite

import (
	"bytes"
	"regexp"
	"strings"
)

// Rule pairs a pattern with the procedure that computes its replacement.
type Rule struct {
	// Pattern matches one call-site shape in the buffer
	Pattern *regexp.Regexp

	// Expand computes the replacement text for a single match. It
	// receives the submatches of the match: index 0 is the full match,
	// the rest are the capture groups.
	Expand func(groups []string) string
}

// Apply rewrites every match of the rule's pattern in content. Matches
// are consumed left-to-right and do not overlap; text that does not
// match is passed through unchanged.
func (r Rule) Apply(content string) string {
	return r.Pattern.ReplaceAllStringFunc(content, func(match string) string {
		return r.Expand(r.Pattern.FindStringSubmatch(match))
	})
}

// Result contains the outcome of a rewrite pass.
type Result struct {
	// WasModified indicates if any rule changed the buffer
	WasModified bool

	// MarkerCount is the number of occurrences of the rewriter's marker
	// substring in the modified content. It counts the rewritten-to
	// shape rather than the substitutions performed, so it is an
	// informational indicator only, not a correctness signal.
	MarkerCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Rewriter applies an ordered list of rules to a text buffer. Rules are
// applied in sequence, each one to the previous rule's output. A
// Rewriter holds no mutable state; Rewrite is a pure function of its
// input and may be called concurrently.
type Rewriter struct {
	rules  []Rule
	marker string
}

// NewRewriter creates a Rewriter from an ordered rule list. The marker
// is the substring counted in the output to report how many rewritten
// call sites the result contains.
func NewRewriter(marker string, rules ...Rule) *Rewriter {
	return &Rewriter{
		rules:  rules,
		marker: marker,
	}
}

// Rewrite applies all rules to content in order and returns the result.
// It never fails: a buffer containing no matches comes back unchanged.
func (rw *Rewriter) Rewrite(content []byte) *Result {
	current := string(content)
	for _, rule := range rw.rules {
		current = rule.Apply(current)
	}

	modified := []byte(current)
	return &Result{
		WasModified:     !bytes.Equal(content, modified),
		MarkerCount:     strings.Count(current, rw.marker),
		OriginalContent: content,
		ModifiedContent: modified,
	}
}
