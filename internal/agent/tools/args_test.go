package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsEmpty(t *testing.T) {
	args, err := ParseArgs("")
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = ParseArgs("   ")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestParseArgsMalformed(t *testing.T) {
	_, err := ParseArgs(`{"max_price": `)
	assert.Error(t, err)
}

func TestArgsFloatCoercion(t *testing.T) {
	args, err := ParseArgs(`{"a": 1500, "b": "1500", "c": " 1500.5 ", "d": "not a number", "e": null}`)
	require.NoError(t, err)

	v, ok := args.Float("a")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)

	v, ok = args.Float("b")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)

	v, ok = args.Float("c")
	assert.True(t, ok)
	assert.Equal(t, 1500.5, v)

	_, ok = args.Float("d")
	assert.False(t, ok)

	_, ok = args.Float("e")
	assert.False(t, ok)

	_, ok = args.Float("missing")
	assert.False(t, ok)
}

func TestArgsString(t *testing.T) {
	args, err := ParseArgs(`{"scent": " men ", "n": 42, "nil": null}`)
	require.NoError(t, err)

	assert.Equal(t, "men", args.String("scent"))
	assert.Equal(t, "42", args.String("n"))
	assert.Equal(t, "", args.String("nil"))
	assert.Equal(t, "", args.String("missing"))
}

func TestIsRegistered(t *testing.T) {
	assert.True(t, IsRegistered(ToolGetProduct))
	assert.True(t, IsRegistered(ToolRecommendProduct))
	assert.True(t, IsRegistered(ToolTrackOrder))
	assert.False(t, IsRegistered(ToolSubmitRecommendations), "submission tool is follow-up only")
	assert.False(t, IsRegistered("drop_tables"))
}
