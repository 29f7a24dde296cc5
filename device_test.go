package winaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snapshot() []Device {
	return []Device{
		{Name: "Speakers (Realtek)", ID: "{0.0.0.00000000}.{aaaa}"},
		{Name: "Headset", ID: "{0.0.0.00000000}.{bbbb}"},
		{Name: "Monitor", ID: "{0.0.0.00000000}.{cccc}"},
	}
}

func TestMarkDefaultFlagsExactlyOne(t *testing.T) {
	devices := snapshot()
	markDefault(devices, "{0.0.0.00000000}.{bbbb}")

	defaults := 0
	for _, d := range devices {
		if d.IsDefault {
			defaults++
			assert.Equal(t, "{0.0.0.00000000}.{bbbb}", d.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestMarkDefaultAbsentDefault(t *testing.T) {
	devices := snapshot()
	markDefault(devices, "")

	for _, d := range devices {
		assert.False(t, d.IsDefault)
	}
}

func TestMarkDefaultIsCaseSensitive(t *testing.T) {
	devices := snapshot()
	markDefault(devices, "{0.0.0.00000000}.{BBBB}")

	for _, d := range devices {
		assert.False(t, d.IsDefault)
	}
}

func TestMarkDefaultRecomputed(t *testing.T) {
	devices := snapshot()
	markDefault(devices, "{0.0.0.00000000}.{aaaa}")
	markDefault(devices, "{0.0.0.00000000}.{cccc}")

	assert.False(t, devices[0].IsDefault)
	assert.True(t, devices[2].IsDefault)
}

func TestHasDevice(t *testing.T) {
	devices := snapshot()

	assert.True(t, hasDevice(devices, "{0.0.0.00000000}.{aaaa}"))
	assert.False(t, hasDevice(devices, "{0.0.0.00000000}.{dddd}"))
	assert.False(t, hasDevice(devices, ""))
	assert.False(t, hasDevice(nil, "{0.0.0.00000000}.{aaaa}"))
}
