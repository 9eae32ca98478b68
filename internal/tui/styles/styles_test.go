package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("Friends", 0))
	assert.Equal(t, "Friends", Truncate("Friends", 7))
	assert.Equal(t, "Fri", Truncate("Friends", 3))
	assert.Equal(t, "Frie...", Truncate("Friends Again", 7))
	assert.Equal(t, "Amé...", Truncate("Amélie Returns", 6))
}
