package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestFormatDateDropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", FormatDate(ts))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-11")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-01-11", FormatDate(d))

	_, err = ParseDate("11/01/2024")
	assert.Error(t, err)
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-1-5"))
	assert.False(t, IsDate(""))
}
