package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"prev", Prev, false},
		{"next", Next, false},
		{"", 0, true},
		{"NEXT", 0, true}, // case sensitive
		{"left", 0, true},
		{" next", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirection)
				assert.False(t, got.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "prev", Prev.String())
	assert.Equal(t, "next", Next.String())
	assert.Equal(t, "Direction(0)", Direction(0).String())
	assert.False(t, Direction(3).Valid())
}

func TestDirectionStep(t *testing.T) {
	assert.Equal(t, 4, Prev.step(5))
	assert.Equal(t, 6, Next.step(5))
}
