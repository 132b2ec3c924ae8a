package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_IsUTC(t *testing.T) {
	got, err := ParseTime("2030-06-01 13:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(time.Date(2030, 6, 1, 13, 0, 0, 0, time.UTC)))

	_, err = ParseTime("2030-06-01T13:00:00Z")
	require.Error(t, err)
}

func TestFormatTime_ConvertsToUTC(t *testing.T) {
	local := time.Date(2030, 6, 1, 15, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	assert.Equal(t, "2030-06-01 12:00:00", FormatTime(local))
}

func TestValidateEventDate_ComparesInstants(t *testing.T) {
	now := time.Date(2030, 6, 1, 15, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	tooSoon := time.Date(2030, 6, 1, 13, 0, 0, 0, time.UTC)
	ok := time.Date(2030, 6, 1, 14, 0, 0, 0, time.UTC)

	require.ErrorIs(t, ValidateEventDate(tooSoon, now), ErrValidation)
	require.NoError(t, ValidateEventDate(ok, now))
}
