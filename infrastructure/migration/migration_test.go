package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements(t *testing.T) {
	statements := Statements()

	require.Len(t, statements, 3)
	assert.True(t, strings.HasPrefix(statements[0], "CREATE TABLE IF NOT EXISTS campaign_records"))
	assert.True(t, strings.HasPrefix(statements[1], "CREATE INDEX IF NOT EXISTS"))
	assert.Contains(t, statements[2], "UNIQUE (company_id, channel, period)")

	for _, statement := range statements {
		assert.NotContains(t, statement, "roi", "campos derivados não são colunas")
	}
}
