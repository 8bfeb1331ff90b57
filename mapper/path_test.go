package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-mapper/jsonval"
)

func treeOf(t *testing.T, pairs map[string]jsonval.Value) jsonval.Value {
	t.Helper()

	m := jsonval.NewMapping()
	for k, v := range pairs {
		m.Set(k, v)
	}

	return m
}

func TestLookupPath(t *testing.T) {
	t.Parallel()

	inner := jsonval.NewMapping()
	inner.Set("value", jsonval.Number(180))

	root := treeOf(t, map[string]jsonval.Value{
		"name":    jsonval.String("Ada"),
		"height":  inner,
		"gone":    jsonval.Null(),
		"numeric": jsonval.Number(5),
	})

	t.Run("flat key", func(t *testing.T) {
		t.Parallel()

		v, ok := lookupPath(root, "name")
		require.True(t, ok)
		s, _ := v.String()
		assert.Equal(t, "Ada", s)
	})

	t.Run("dotted key", func(t *testing.T) {
		t.Parallel()

		v, ok := lookupPath(root, "height.value")
		require.True(t, ok)
		n, _ := v.Number()
		assert.Equal(t, 180.0, n)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, ok := lookupPath(root, "weight")
		assert.False(t, ok)
		_, ok = lookupPath(root, "height.missing")
		assert.False(t, ok)
		_, ok = lookupPath(root, "weight.value")
		assert.False(t, ok)
	})

	t.Run("null intermediate is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := lookupPath(root, "gone.value")
		assert.False(t, ok)
	})

	t.Run("non-mapping intermediate is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := lookupPath(root, "numeric.value")
		assert.False(t, ok)
		_, ok = lookupPath(root, "name.value")
		assert.False(t, ok)
	})

	t.Run("explicit null leaf is present", func(t *testing.T) {
		t.Parallel()

		v, ok := lookupPath(root, "gone")
		require.True(t, ok)
		assert.True(t, v.IsNull())
	})

	t.Run("non-mapping root", func(t *testing.T) {
		t.Parallel()

		_, ok := lookupPath(jsonval.Number(1), "any")
		assert.False(t, ok)
	})
}

func TestStorePath(t *testing.T) {
	t.Parallel()

	t.Run("flat key", func(t *testing.T) {
		t.Parallel()

		root := jsonval.NewMapping()
		storePath(root, "name", jsonval.String("Ada"))

		v, ok := root.Get("name")
		require.True(t, ok)
		s, _ := v.String()
		assert.Equal(t, "Ada", s)
	})

	t.Run("creates intermediates", func(t *testing.T) {
		t.Parallel()

		root := jsonval.NewMapping()
		storePath(root, "a.b.c", jsonval.Number(1))

		v, ok := lookupPath(root, "a.b.c")
		require.True(t, ok)
		n, _ := v.Number()
		assert.Equal(t, 1.0, n)
	})

	t.Run("preserves siblings", func(t *testing.T) {
		t.Parallel()

		root := jsonval.NewMapping()
		storePath(root, "height.value", jsonval.Number(180))
		storePath(root, "height.text", jsonval.String("6 feet tall"))
		storePath(root, "name", jsonval.String("Ada"))

		height, ok := root.Get("height")
		require.True(t, ok)
		assert.Equal(t, 2, height.Len())

		v, ok := lookupPath(root, "height.value")
		require.True(t, ok)
		n, _ := v.Number()
		assert.Equal(t, 180.0, n)
	})

	t.Run("replaces non-mapping intermediate", func(t *testing.T) {
		t.Parallel()

		root := jsonval.NewMapping()
		root.Set("height", jsonval.Number(5))
		storePath(root, "height.value", jsonval.Number(180))

		_, ok := lookupPath(root, "height.value")
		assert.True(t, ok)
	})
}
