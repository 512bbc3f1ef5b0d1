package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToReach(t *testing.T) {
	tests := []struct {
		name     string
		level    uint8
		expected int64
	}{
		{name: "level one costs nothing", level: 1, expected: 0},
		{name: "level two", level: 2, expected: 320},
		{name: "level three", level: 3, expected: 640},
		{name: "level four", level: 4, expected: 960},
		{name: "level five jumps", level: 5, expected: 5760},
		{name: "level six", level: 6, expected: 6080},
		{name: "level ten jumps again", level: 10, expected: 18240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeToReach(tt.level, 320))
		})
	}
}

func TestUpgradeTime(t *testing.T) {
	assert.Equal(t, int64(320), UpgradeTime(1, 2, 320))
	assert.Equal(t, int64(4800), UpgradeTime(4, 5, 320))
	assert.Equal(t, int64(5760), UpgradeTime(1, 5, 320))
	assert.Equal(t, int64(12480), UpgradeTime(5, 10, 320))
}
