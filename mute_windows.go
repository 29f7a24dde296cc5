//go:build windows

package winaudio

import (
	"fmt"

	"github.com/moutend/go-wca/pkg/wca"

	"github.com/sameerbk201/winaudio/internal/com"
)

// SetDefaultPlaybackMute sets the mute flag on whatever device is the
// default playback endpoint at call time, resolving it fresh rather than
// from any earlier enumeration. It returns false when no default can be
// resolved or the platform rejects the flag.
func SetDefaultPlaybackMute(mute bool) (bool, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return false, &InitializationError{Err: err}
	}
	defer apt.Close()

	mmd, ok := defaultRenderEndpoint()
	if !ok {
		return false, nil
	}
	defer com.Release(&mmd)

	return muteEndpoint(mmd, mute), nil
}

// MuteDevice sets the mute flag on the endpoint with the given ID. The
// device is resolved directly by ID, not through a full enumeration. An
// unknown or disconnected ID returns false without error.
func MuteDevice(deviceID string, mute bool) (bool, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return false, &InitializationError{Err: err}
	}
	defer apt.Close()

	mmd, ok := endpointByID(deviceID)
	if !ok {
		return false, nil
	}
	defer com.Release(&mmd)

	return muteEndpoint(mmd, mute), nil
}

// DefaultPlaybackMuted reports the current mute flag of the default
// playback endpoint.
func DefaultPlaybackMuted() (bool, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return false, &InitializationError{Err: err}
	}
	defer apt.Close()

	mmd, ok := defaultRenderEndpoint()
	if !ok {
		return false, errNoDefault
	}
	defer com.Release(&mmd)

	return endpointMuted(mmd)
}

// DeviceMuted reports the current mute flag of the endpoint with the
// given ID.
func DeviceMuted(deviceID string) (bool, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return false, &InitializationError{Err: err}
	}
	defer apt.Close()

	mmd, ok := endpointByID(deviceID)
	if !ok {
		return false, errNoDevice
	}
	defer com.Release(&mmd)

	return endpointMuted(mmd)
}

// defaultRenderEndpoint resolves the console-role default render endpoint.
// The enumerator is released before returning so only the device keeps a
// reference alive.
func defaultRenderEndpoint() (*wca.IMMDevice, bool) {
	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return nil, false
	}

	var mmd *wca.IMMDevice
	err := mmde.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &mmd)
	com.Release(&mmde)
	if err != nil {
		return nil, false
	}

	return mmd, true
}

// endpointByID resolves an endpoint by its opaque ID.
func endpointByID(deviceID string) (*wca.IMMDevice, bool) {
	if deviceID == "" {
		return nil, false
	}

	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return nil, false
	}

	var mmd *wca.IMMDevice
	err := getDevice(mmde, deviceID, &mmd)
	com.Release(&mmde)
	if err != nil {
		return nil, false
	}

	return mmd, true
}

// muteEndpoint activates the volume facet on an already-resolved device and
// sets its mute flag. The caller keeps ownership of the device.
func muteEndpoint(mmd *wca.IMMDevice, mute bool) bool {
	var aev *wca.IAudioEndpointVolume
	if err := mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return false
	}
	defer com.Release(&aev)

	return aev.SetMute(mute, nil) == nil
}

func endpointMuted(mmd *wca.IMMDevice) (bool, error) {
	var aev *wca.IAudioEndpointVolume
	if err := mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return false, fmt.Errorf("failed to activate endpoint volume: %w", err)
	}
	defer com.Release(&aev)

	var muted bool
	if err := aev.GetMute(&muted); err != nil {
		return false, fmt.Errorf("failed to read mute state: %w", err)
	}

	return muted, nil
}
