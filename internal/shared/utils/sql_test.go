package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var w WhereBuilder
		assert.Equal(t, "", w.SQL())
		assert.Empty(t, w.Args())
	})

	t.Run("placeholders are numbered in order", func(t *testing.T) {
		var w WhereBuilder
		w.Add("visible = true")
		w.Add("category = " + w.Arg("NATURE"))
		p := w.Arg("%sun%")
		w.Add(JoinWithOr([]string{"title ILIKE " + p, "description ILIKE " + p}))

		assert.Equal(t, "WHERE visible = true AND category = $1 AND (title ILIKE $2 OR description ILIKE $2)", w.SQL())
		assert.Equal(t, []any{"NATURE", "%sun%"}, w.Args())
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
}
