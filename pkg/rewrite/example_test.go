package rewrite_test

import (
	"fmt"

	"github.com/cklose/sqlxfix/pkg/rewrite"
)

func ExampleRewriter_Rewrite() {
	rewriter := rewrite.NewSQLXRewriter()

	content := []byte(`let agent = sqlx::query(r#"SELECT * FROM agents WHERE id = ?"#, agent_id)`)

	result := rewriter.Rewrite(content)

	fmt.Println(string(result.ModifiedContent))
	fmt.Printf("bind calls: %d\n", result.MarkerCount)
	// Output:
	// let agent = sqlx::query(r#"SELECT * FROM agents WHERE id = ?"#)
	//         .bind(agent_id)
	// bind calls: 1
}
