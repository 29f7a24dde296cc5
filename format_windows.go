//go:build windows

package winaudio

import (
	"fmt"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"

	"github.com/sameerbk201/winaudio/internal/com"
)

// DeviceFormat reports the shared-mode mix format of the endpoint with the
// given ID.
func DeviceFormat(deviceID string) (FormatInfo, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return FormatInfo{}, &InitializationError{Err: err}
	}
	defer apt.Close()

	mmd, ok := endpointByID(deviceID)
	if !ok {
		return FormatInfo{}, errNoDevice
	}
	defer com.Release(&mmd)

	var ac *wca.IAudioClient
	if err := mmd.Activate(wca.IID_IAudioClient, wca.CLSCTX_ALL, nil, &ac); err != nil {
		return FormatInfo{}, fmt.Errorf("failed to activate audio client: %w", err)
	}
	defer com.Release(&ac)

	var wfx *wca.WAVEFORMATEX
	if err := ac.GetMixFormat(&wfx); err != nil {
		return FormatInfo{}, fmt.Errorf("failed to get mix format: %w", err)
	}
	defer ole.CoTaskMemFree(uintptr(unsafe.Pointer(wfx)))

	return FormatInfo{
		SampleRate: wfx.NSamplesPerSec,
		BitDepth:   wfx.WBitsPerSample,
		Channels:   wfx.NChannels,
		BlockAlign: wfx.NBlockAlign,
	}, nil
}
