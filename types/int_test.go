package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	makers := map[string]IntMaker{
		"int64": Int64Maker{},
		"big":   BigIntMaker{},
	}
	for name, m := range makers {
		t.Run(name, func(t *testing.T) {
			n, ok := m.ParseInt("42")
			require.True(t, ok)
			assert.Equal(t, int64(42), n.Int64())
			assert.True(t, n.Eq(m.MakeInt(42)))

			_, ok = m.ParseInt("kitten")
			assert.False(t, ok)
		})
	}
}

func TestInt64Overflow(t *testing.T) {
	_, ok := Int64Maker{}.ParseInt("99999999999999999999")
	assert.False(t, ok)

	n, ok := BigIntMaker{}.ParseInt("99999999999999999999")
	require.True(t, ok)
	assert.False(t, n.IsInt64())

	b := &strings.Builder{}
	n.Plus(BigIntMaker{}.MakeInt(1)).Print(b)
	assert.Equal(t, "100000000000000000000", b.String())
}

func TestLess(t *testing.T) {
	assert.True(t, Int64(1).Less(Int64(2)))
	assert.False(t, Int64(2).Less(Int64(2)))
	m := BigIntMaker{}
	assert.True(t, m.MakeInt(-3).Less(m.MakeInt(0)))
}
