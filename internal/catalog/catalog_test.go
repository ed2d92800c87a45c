package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	for _, name := range []string{"9-5/8", "9 5/8", "9.625", " 9-5/8 "} {
		s, err := FindOuter(name)
		require.NoError(t, err, name)
		assert.Equal(t, "9-5/8", s.Name)
	}

	s, err := FindInner("none")
	require.NoError(t, err)
	assert.Equal(t, NoPipe, s)

	s, err = FindInner("0")
	require.NoError(t, err)
	assert.Equal(t, NoPipe, s)

	_, err = FindOuter("42")
	assert.Error(t, err)
}

func TestSizeValueAndLabel(t *testing.T) {
	assert.Equal(t, "0.244475", DefaultOuter.Value())
	assert.Equal(t, `9 5/8" casing`, DefaultOuter.Label())
	assert.Equal(t, "0.149225", DefaultInner.Value())
	assert.Equal(t, "0", NoPipe.Value())
	assert.Equal(t, "No pipe", NoPipe.Label())
}

func TestByValue(t *testing.T) {
	s, ok := ByValue(OuterSizes, "0.244475")
	require.True(t, ok)
	assert.Equal(t, "9-5/8", s.Name)

	_, ok = ByValue(OuterSizes, "0.123")
	assert.False(t, ok)
}

func TestCatalogOrdering(t *testing.T) {
	for i := 1; i < len(OuterSizes); i++ {
		assert.Less(t, OuterSizes[i-1].Inches, OuterSizes[i].Inches)
	}
	for i := 1; i < len(InnerSizes); i++ {
		assert.Less(t, InnerSizes[i-1].Inches, InnerSizes[i].Inches)
	}
}
