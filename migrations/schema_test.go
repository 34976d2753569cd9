package migrations

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnDefs returns the column definition lines of one CREATE TABLE block.
func columnDefs(t *testing.T, file, table string) map[string]string {
	t.Helper()
	raw, err := os.ReadFile(file)
	require.NoError(t, err)

	block := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\n\);`).FindSubmatch(raw)
	require.NotNil(t, block, "table %s not found", table)

	cols := make(map[string]string)
	for _, line := range strings.Split(string(block[1]), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		cols[fields[0]] = strings.TrimSuffix(strings.Join(fields[1:], " "), ",")
	}
	return cols
}

func TestVideosSchema_OptionalColumnsNullable(t *testing.T) {
	cols := columnDefs(t, "000001_init_schema.up.sql", "videos")

	for _, name := range []string{"description", "video_url", "thumbnail", "duration"} {
		def, ok := cols[name]
		require.True(t, ok, name)
		assert.NotContains(t, def, "NOT NULL", name)
	}
	assert.Contains(t, cols["tags"], "NOT NULL DEFAULT '{}'")
}

func TestPhotosSchema_OptionalColumnsNullable(t *testing.T) {
	cols := columnDefs(t, "000001_init_schema.up.sql", "photos")

	for _, name := range []string{"description", "thumbnail", "likes", "views"} {
		def, ok := cols[name]
		require.True(t, ok, name)
		assert.NotContains(t, def, "NOT NULL", name)
	}
}
