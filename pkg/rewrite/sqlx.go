package rewrite

import "regexp"

const (
	// bindMarker is the hallmark of a completed rewrite, counted in the
	// output buffer for the summary report
	bindMarker = ".bind("

	// chainIndent matches the indentation sqlx call chains use in the
	// target source
	chainIndent = "        "
)

var (
	// queryCallPattern matches a two-argument sqlx::query call: a raw
	// string literal followed by a single bare-identifier parameter.
	// The raw string body is matched up to the first quote, so a query
	// containing its own fence marker truncates the match early (known
	// limitation). Calls with multiple parameters or expression
	// arguments never match and are left untouched.
	queryCallPattern = regexp.MustCompile(`(sqlx::query\(\s*r#"[^"]*"#),\s*(\w+)\s*\)`)

	// orphanFetchPattern matches two closing parens on their own lines
	// followed by a stranded .fetch_one or .fetch_all chain call.
	orphanFetchPattern = regexp.MustCompile(`\)\s*\n\s*\)\s*\n\s*\.(fetch_(?:one|all))`)
)

// NewSQLXRewriter builds the rewriter that converts query-macro style
// calls into builder-style chains:
//
//	sqlx::query(r#"SELECT ..."#, id)
//
// becomes
//
//	sqlx::query(r#"SELECT ..."#)
//	        .bind(id)
//
// A second cleanup rule collapses doubled closing parens left in front
// of a fetch_one/fetch_all terminal call so the chain ends up on one
// indented line.
func NewSQLXRewriter() *Rewriter {
	return NewRewriter(bindMarker,
		Rule{
			Pattern: queryCallPattern,
			Expand: func(groups []string) string {
				return groups[1] + ")\n" + chainIndent + ".bind(" + groups[2] + ")"
			},
		},
		Rule{
			Pattern: orphanFetchPattern,
			Expand: func(groups []string) string {
				return ")\n" + chainIndent + "." + groups[1]
			},
		},
	)
}
