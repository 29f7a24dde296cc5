//go:build windows

package winaudio

import (
	"github.com/sameerbk201/winaudio/internal/com"
	"github.com/sameerbk201/winaudio/internal/policy"
)

// SetDefaultDevice makes the endpoint with the given ID the default playback
// device for the console, multimedia, and communications roles. An ID that
// does not match any active endpoint returns false without error; that is a
// routine caller mistake, not a system fault. The result is true only when
// all three role assignments succeed. There is no rollback, so a false
// result may leave a subset of roles already pointing at the new device.
func SetDefaultDevice(deviceID string) (bool, error) {
	apt, err := com.NewApartment()
	if err != nil {
		return false, &InitializationError{Err: err}
	}
	defer apt.Close()

	devices, err := listDevices()
	if err != nil {
		return false, err
	}
	if !hasDevice(devices, deviceID) {
		return false, nil
	}

	sw, err := policy.NewSwitcher()
	if err != nil {
		return false, &PolicyUnavailableError{Err: err}
	}
	defer sw.Close()

	return switchAllRoles(policySwitcher{sw}, deviceID), nil
}

// policySwitcher adapts the policy-config object to the EndpointSwitcher
// seam.
type policySwitcher struct {
	sw *policy.Switcher
}

func (p policySwitcher) SetDefaultEndpoint(deviceID string, role Role) error {
	return p.sw.SetDefaultEndpoint(deviceID, uint32(role))
}
