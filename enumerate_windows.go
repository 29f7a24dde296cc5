//go:build windows

package winaudio

import (
	"github.com/moutend/go-wca/pkg/wca"

	"github.com/sameerbk201/winaudio/internal/com"
)

// ListDevices returns a snapshot of every active playback endpoint in
// platform enumeration order. At most one record is flagged as default;
// none are when the default cannot be resolved. A system with no active
// endpoints yields an empty, non-error result.
func ListDevices() ([]Device, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	defer apt.Close()

	return listDevices()
}

// listDevices is the enumeration body shared with the default-switch
// membership check. The caller owns the apartment.
func listDevices() ([]Device, error) {
	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return nil, &EnumerationError{Op: "failed to create device enumerator", Err: err}
	}
	defer com.Release(&mmde)

	var mdc *wca.IMMDeviceCollection
	if err := mmde.EnumAudioEndpoints(wca.ERender, wca.DEVICE_STATE_ACTIVE, &mdc); err != nil {
		return nil, &EnumerationError{Op: "failed to enumerate render endpoints", Err: err}
	}
	defer com.Release(&mdc)

	var count uint32
	if err := mdc.GetCount(&count); err != nil {
		return nil, &EnumerationError{Op: "failed to get endpoint count", Err: err}
	}

	devices := make([]Device, 0, count)
	for i := uint32(0); i < count; i++ {
		d, ok := deviceAt(mdc, i)
		if !ok {
			// Partial results beat total failure; a device whose ID or
			// name cannot be read is skipped.
			continue
		}
		devices = append(devices, d)
	}

	markDefault(devices, defaultEndpointID(mmde))

	return devices, nil
}

func deviceAt(mdc *wca.IMMDeviceCollection, i uint32) (Device, bool) {
	var mmd *wca.IMMDevice
	if err := mdc.Item(i, &mmd); err != nil {
		return Device{}, false
	}
	defer com.Release(&mmd)

	var id string
	if err := mmd.GetId(&id); err != nil {
		return Device{}, false
	}

	name, ok := friendlyName(mmd)
	if !ok {
		return Device{}, false
	}

	return Device{ID: id, Name: name}, true
}

func friendlyName(mmd *wca.IMMDevice) (string, bool) {
	var ps *wca.IPropertyStore
	if err := mmd.OpenPropertyStore(wca.STGM_READ, &ps); err != nil {
		return "", false
	}
	defer com.Release(&ps)

	var pv wca.PROPVARIANT
	if err := ps.GetValue(&wca.PKEY_Device_FriendlyName, &pv); err != nil {
		return "", false
	}

	return pv.String(), true
}

// defaultEndpointID resolves the ID of the console-role default render
// endpoint. An empty string means no default; that is not an error.
func defaultEndpointID(mmde *wca.IMMDeviceEnumerator) string {
	var mmd *wca.IMMDevice
	if err := mmde.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &mmd); err != nil {
		return ""
	}
	defer com.Release(&mmd)

	var id string
	if err := mmd.GetId(&id); err != nil {
		return ""
	}

	return id
}
