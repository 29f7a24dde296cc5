//go:build windows

package winaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMuteDeviceUnknownID(t *testing.T) {
	ok, err := MuteDevice("{0.0.0.00000000}.{00000000-0000-0000-0000-000000000000}", true)
	if err != nil {
		t.Skipf("audio subsystem unavailable: %v", err)
	}
	assert.False(t, ok)
}

func TestMuteDeviceEmptyID(t *testing.T) {
	ok, err := MuteDevice("", true)
	if err != nil {
		t.Skipf("audio subsystem unavailable: %v", err)
	}
	assert.False(t, ok)
}

func TestDefaultPlaybackMuteRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("mutates the default device mute flag")
	}

	before, err := DefaultPlaybackMuted()
	if err != nil {
		t.Skipf("no default playback device: %v", err)
	}

	ok, err := SetDefaultPlaybackMute(!before)
	require.NoError(t, err)
	if !ok {
		t.Skip("mute not permitted on this device")
	}

	ok, err = SetDefaultPlaybackMute(before)
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := DefaultPlaybackMuted()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeviceFormatUnknownID(t *testing.T) {
	_, err := DeviceFormat("{0.0.0.00000000}.{00000000-0000-0000-0000-000000000000}")
	assert.Error(t, err)
}
