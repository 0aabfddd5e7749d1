package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

func defaultGridSettings() *domain.SystemSettings {
	return domain.DefaultSettings()
}

func TestGenerateCandidateStartTimesDefaultWindow(t *testing.T) {
	// 06:00-22:00 at 30 minutes: 32 starts, closing time itself excluded.
	starts := generateCandidateStartTimes(defaultGridSettings())

	require.Len(t, starts, 32)
	assert.Equal(t, types.TimeString("06:00"), starts[0])
	assert.Equal(t, types.TimeString("06:30"), starts[1])
	assert.Equal(t, types.TimeString("21:30"), starts[len(starts)-1])
}

func TestGenerateCandidateStartTimesHourlyGrid(t *testing.T) {
	settings := defaultGridSettings()
	settings.SlotDurationMinutes = 60

	starts := generateCandidateStartTimes(settings)

	require.Len(t, starts, 16)
	assert.Equal(t, types.TimeString("06:00"), starts[0])
	assert.Equal(t, types.TimeString("21:00"), starts[len(starts)-1])
}

func TestGenerateCandidateStartTimes24x7(t *testing.T) {
	settings := defaultGridSettings()
	settings.Is24x7 = true

	starts := generateCandidateStartTimes(settings)

	require.Len(t, starts, 48)
	assert.Equal(t, types.TimeString("00:00"), starts[0])
	assert.Equal(t, types.TimeString("23:30"), starts[len(starts)-1])
}

func TestGenerateLegalEndTimesRespectsBounds(t *testing.T) {
	// Min 1h, max 4h at 30-minute steps from 10:00: 60..240 minutes.
	ends := generateLegalEndTimes("10:00", defaultGridSettings())

	require.Len(t, ends, 7)
	assert.Equal(t, types.TimeString("11:00"), ends[0].end)
	assert.Equal(t, 60, ends[0].durationMinutes)
	assert.Equal(t, types.TimeString("14:00"), ends[len(ends)-1].end)
	assert.Equal(t, 240, ends[len(ends)-1].durationMinutes)
}

func TestGenerateLegalEndTimesClippedByClosing(t *testing.T) {
	// From 20:00 only 21:00, 21:30 and 22:00 fit before closing.
	ends := generateLegalEndTimes("20:00", defaultGridSettings())

	require.Len(t, ends, 3)
	assert.Equal(t, types.TimeString("22:00"), ends[len(ends)-1].end)
}

func TestGenerateLegalEndTimesNoneNearClosing(t *testing.T) {
	// From 21:30 even the minimum one-hour interval overruns closing.
	ends := generateLegalEndTimes("21:30", defaultGridSettings())

	assert.Empty(t, ends)
}

func TestGenerateLegalEndTimesFractionalMinimum(t *testing.T) {
	settings := defaultGridSettings()
	settings.MinBookingHours = 0.5

	ends := generateLegalEndTimes("10:00", settings)

	require.NotEmpty(t, ends)
	assert.Equal(t, types.TimeString("10:30"), ends[0].end)
	assert.Equal(t, 30, ends[0].durationMinutes)
}

func TestGenerateLegalEndTimesWrapsUnder24x7(t *testing.T) {
	settings := defaultGridSettings()
	settings.Is24x7 = true

	ends := generateLegalEndTimes("23:00", settings)

	require.Len(t, ends, 7)
	// One hour past 23:00 wraps to midnight; the encoding keeps end <= start.
	assert.Equal(t, types.TimeString("00:00"), ends[0].end)
	assert.Equal(t, types.TimeString("03:00"), ends[len(ends)-1].end)
	for _, e := range ends {
		assert.False(t, e.end.IsAfter("23:00"), "wrapped ends stay numerically below the start")
	}
}
