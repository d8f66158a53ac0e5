package fixup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cklose/sqlxfix/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperation() *Operation {
	return New(rewrite.NewSQLXRewriter(), NewUserLogger(context.Background()))
}

func TestOperation_FixFile(t *testing.T) {
	source := `impl Agent {
    async fn load(&self, agent_id: String) -> Result<Row> {
        let agent = sqlx::query(r#"SELECT * FROM agents WHERE id = ?"#, agent_id)
            .fetch_one(&self.pool)
            .await?;
        Ok(agent)
    }

    async fn tools(&self, status: String) -> Result<Vec<Row>> {
        let tools = sqlx::query(
            r#"SELECT name FROM tools
               WHERE status = ?"#,
            status
        )
        .fetch_all(&self.pool)
        .await?;
        Ok(tools)
    }

    async fn rename(&self, name: String, agent_id: String) -> Result<()> {
        sqlx::query(r#"UPDATE agents SET name = ?"#, name, agent_id)
            .execute(&self.pool)
            .await?;
        Ok(())
    }
}
`

	dir := t.TempDir()
	path := filepath.Join(dir, "agent.rs")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	result, err := newTestOperation().FixFile(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.WasModified)
	assert.Equal(t, 2, result.MarkerCount)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(result.ModifiedContent), string(fixed))
	assert.Equal(t, 2, strings.Count(string(fixed), ".bind("))
	assert.Contains(t, string(fixed), ".bind(agent_id)")
	assert.Contains(t, string(fixed), ".bind(status)")

	// The two-parameter call does not match the expected shape and must
	// come through untouched.
	assert.Contains(t, string(fixed), `sqlx::query(r#"UPDATE agents SET name = ?"#, name, agent_id)`)

	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, source, string(backup))
}

func TestOperation_FixFile_NoMatches(t *testing.T) {
	source := "fn main() {}\n"

	dir := t.TempDir()
	path := filepath.Join(dir, "main.rs")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	result, err := newTestOperation().FixFile(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, result.WasModified)
	assert.Equal(t, 0, result.MarkerCount)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(fixed))

	// Backup is written unconditionally, before the rewrite runs.
	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, source, string(backup))
}

func TestOperation_FixFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.rs")

	_, err := newTestOperation().FixFile(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, path+BackupSuffix)
}
