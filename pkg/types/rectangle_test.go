package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		height  float64
		wantMsg string
	}{
		{name: "valid", width: 3, height: 4},
		{name: "fractional sides", width: 0.5, height: 0.25},
		{name: "zero width", width: 0, height: 4, wantMsg: "Width must be greater than 0"},
		{name: "negative height", width: 3, height: -5, wantMsg: "Height must be greater than 0"},
		{name: "both invalid reports width", width: -1, height: -1, wantMsg: "Width must be greater than 0"},
		{name: "NaN width", width: math.NaN(), height: 1, wantMsg: "Width must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seq Sequence

			r, err := NewRectangle(&seq, tt.width, tt.height)

			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, r.ID)
				return
			}
			assert.Nil(t, r)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "rectangle", verr.Entity)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Equal(t, 1, seq.Peek())
		})
	}
}

func TestRectangleAreaPerimeter(t *testing.T) {
	var seq Sequence
	r, err := NewRectangle(&seq, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, 14.0, r.Perimeter())
	assert.Equal(t, "Rectangle{id=1, width=3, height=4}", r.String())

	r2, err := NewRectangle(&seq, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, r2.ID)
}
