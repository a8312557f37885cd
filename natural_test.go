package rovat_test

import (
	"testing"

	"github.com/bkovacs/rovat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalLess(t *testing.T) {
	t.Parallel()

	t.Run("compares digit runs by numeric value", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rovat.NaturalLess("page_9", "page_10"))
		assert.False(t, rovat.NaturalLess("page_10", "page_9"))
	})

	t.Run("compares text case-insensitively", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rovat.NaturalLess("Alpha_1", "beta_1"))
		assert.True(t, rovat.NaturalLess("alpha_1", "Beta_1"))
	})

	t.Run("breaks numeric ties by suffix", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rovat.NaturalLess("page_3a", "page_3b"))
		assert.True(t, rovat.NaturalLess("page_3", "page_3a"))
	})

	t.Run("handles very long digit runs without overflow", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rovat.NaturalLess("p_99999999999999999998", "p_99999999999999999999"))
	})
}

func TestOrderPages(t *testing.T) {
	t.Parallel()

	t.Run("orders pages by numeric token", func(t *testing.T) {
		t.Parallel()

		files := []rovat.PageFile{
			{ID: "page_9", Path: "page_9.json"},
			{ID: "page_10", Path: "page_10.json"},
			{ID: "page_2", Path: "page_2.json"},
		}

		err := rovat.OrderPages(files)

		require.NoError(t, err)
		assert.Equal(t, "page_2", files[0].ID)
		assert.Equal(t, "page_9", files[1].ID)
		assert.Equal(t, "page_10", files[2].ID)
	})

	t.Run("orders nested issue folders", func(t *testing.T) {
		t.Parallel()

		files := []rovat.PageFile{
			{ID: "1903/12/page_1"},
			{ID: "1903/2/page_1"},
			{ID: "1903/2/page_2"},
		}

		err := rovat.OrderPages(files)

		require.NoError(t, err)
		assert.Equal(t, "1903/2/page_1", files[0].ID)
		assert.Equal(t, "1903/2/page_2", files[1].ID)
		assert.Equal(t, "1903/12/page_1", files[2].ID)
	})

	t.Run("returns ECONFLICT for indistinguishable filenames", func(t *testing.T) {
		t.Parallel()

		files := []rovat.PageFile{
			{ID: "page_07"},
			{ID: "page_7"},
		}

		err := rovat.OrderPages(files)

		require.Error(t, err)
		assert.Equal(t, rovat.ECONFLICT, rovat.ErrorCode(err))
	})

	t.Run("accepts empty file set", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, rovat.OrderPages(nil))
	})
}
