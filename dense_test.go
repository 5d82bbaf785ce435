package sparsevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := []int64{1, 0, -2, 0, 3}
		d := NewDense(in)

		assert.Equal(t, in, d.Values())
		assert.Equal(t, 5, d.Len())
		for i, v := range in {
			assert.Equal(t, v, d.At(i))
		}
	})

	t.Run("DefensiveCopy", func(t *testing.T) {
		in := []int64{1, 2, 3}
		d := NewDense(in)
		in[0] = 99
		assert.Equal(t, []int64{1, 2, 3}, d.Values())

		out := d.Values()
		out[1] = 99
		assert.Equal(t, int64(2), d.At(1))
	})

	t.Run("Empty", func(t *testing.T) {
		d := NewDense(nil)
		assert.Equal(t, 0, d.Len())
		assert.Empty(t, d.Values())
		assert.Empty(t, d.NonZero())
	})

	t.Run("AtOutOfRangePanics", func(t *testing.T) {
		d := NewDense([]int64{1})
		assert.Panics(t, func() { d.At(1) })
	})

	t.Run("NonZero", func(t *testing.T) {
		d := NewDense([]int64{0, 4, 0, 0, -1})
		assert.Equal(t, []int{1, 4}, d.NonZero())
	})

	t.Run("Sparse", func(t *testing.T) {
		in := []int64{0, 4, 0, 0, -1, 0}
		s := NewDense(in).Sparse()
		assert.Equal(t, 6, s.Len())
		assert.Equal(t, in, s.Values())
	})
}

func TestDenseDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int64
		expected int64
	}{
		{"Simple", []int64{1, 2, 3}, []int64{1, 2, 5}, 20},
		{"Sparse", []int64{1, 0, 2, 0, 3, 1, 0, 2, 0, 3}, []int64{0, 2, 0, 4, 0, 1, 0, 2, 0, 3}, 14},
		{"Mixed", []int64{1, -1, 2}, []int64{1, 1, -2}, -4},
		{"Zero", []int64{0, 0, 0}, []int64{7, 8, 9}, 0},
		{"Empty", []int64{}, []int64{}, 0},
		{"Single", []int64{2}, []int64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewDense(tt.a), NewDense(tt.b)

			got, err := a.Dot(b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			rev, err := b.Dot(a)
			require.NoError(t, err)
			assert.Equal(t, got, rev)
		})
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := NewDense([]int64{1, 2, 3}).Dot(NewDense([]int64{1, 2}))
		require.Error(t, err)

		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 3, lm.Left)
		assert.Equal(t, 2, lm.Right)
		assert.Contains(t, err.Error(), "3")
		assert.Contains(t, err.Error(), "2")
	})

	t.Run("DoesNotMutateOperands", func(t *testing.T) {
		a := NewDense([]int64{1, 2, 3})
		b := NewDense([]int64{4, 5, 6})
		_, err := a.Dot(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, a.Values())
		assert.Equal(t, []int64{4, 5, 6}, b.Values())
	})
}
