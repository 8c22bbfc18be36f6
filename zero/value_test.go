package zero_test

import (
	"testing"

	"github.com/amp-labs/seqmaps/zero"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name  string
	Count int
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("int returns 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, zero.Value[int]())
	})

	t.Run("string returns empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, zero.Value[string]())
	})

	t.Run("pointer returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, zero.Value[*testStruct]())
	})

	t.Run("struct returns zeroed fields", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, testStruct{}, zero.Value[testStruct]())
	})

	t.Run("slice returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, zero.Value[[]int]())
	})
}
