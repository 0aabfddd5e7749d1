package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"00:00", "00:00", false},
		{"09:30", "09:30", false},
		{"23:59", "23:59", false},
		{"14:00:00", "14:00", false}, // Postgres TIME scan form
		{"24:00", "", true},
		{"9:30", "", true}, // zero padding is mandatory for ordering
		{"9:30:00", "", true},
		{"6:5", "", true},
		{"12:60", "", true},
		{"noon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 359, 719, 1439} {
		ts := MinutesToTimeString(minutes)
		assert.Equal(t, minutes, ts.Minutes())
	}
}

func TestMinutesToTimeStringWraps(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), MinutesToTimeString(1440))
	assert.Equal(t, TimeString("01:30"), MinutesToTimeString(1440+90))
	assert.Equal(t, TimeString("23:00"), MinutesToTimeString(-60))
}

func TestLexicographicOrderMatchesChronological(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:00").IsAfter("06:00"))
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)

	_, err = TimeString("junk").AddMinutes(10)
	assert.Error(t, err)
}

func TestScanFromTimeColumn(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("06:00:00")))
	assert.Equal(t, TimeString("06:00"), ts)

	assert.Error(t, ts.Scan(42))
}
