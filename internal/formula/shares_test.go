package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareTranche(t *testing.T) {
	tests := []struct {
		totalIssued int
		want        int
	}{
		{0, 0},
		{10_000, 0},
		{25_000, 0},
		{49_999, 0},
		{50_000, 1},
		{74_999, 1},
		{75_000, 2},
		{200_000, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShareTranche(tt.totalIssued), "totalIssued=%d", tt.totalIssued)
	}
}

func TestSharePrice_DoublesPerTranche(t *testing.T) {
	const base = 10.0
	assert.Equal(t, base, SharePrice(base, 25_000))
	assert.Equal(t, base*2, SharePrice(base, 50_000))
	assert.Equal(t, base*4, SharePrice(base, 75_000))
}
