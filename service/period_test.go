package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	parsed, err := ParsePeriod("2024-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.May, parsed.Month())

	_, err = ParsePeriod("05/2024")
	assert.Error(t, err)

	_, err = ParsePeriod("")
	assert.Error(t, err)
}

func TestFormatPeriodRoundTrip(t *testing.T) {
	parsed, err := ParsePeriod("2023-12")
	require.NoError(t, err)
	assert.Equal(t, "2023-12", FormatPeriod(parsed))
}

func TestPreviousPeriod(t *testing.T) {
	period := PreviousPeriod()

	parsed, err := ParsePeriod(period)
	require.NoError(t, err)
	assert.True(t, parsed.Before(time.Now()))
}
