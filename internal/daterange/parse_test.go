package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	start, err := ParseBound("2024-01-05", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), start)

	end, err := ParseBound("2024-01-05", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 23, 59, 59, 999999999, time.UTC), end)

	exact, err := ParseBound("2024-01-05T10:00:00+02:00", true)
	require.NoError(t, err)
	assert.True(t, exact.Equal(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)))

	for _, bad := range []string{"", "05/01/2024", "tomorrow"} {
		_, err := ParseBound(bad, false)
		assert.Error(t, err, bad)
	}
}
