// Package winaudio enumerates and controls Windows audio playback (render)
// endpoints: listing active output devices, switching the system default
// across all roles, and muting either the default or a specific device.
//
// Every operation is a stateless, synchronous query against live OS state;
// each call initializes its own COM apartment and releases every acquired
// interface before returning. Routine failures (unknown device ID, a mute
// call the platform rejects) surface as a false result; environment
// failures (COM setup, the policy object, whole-collection enumeration)
// surface as errors.
package winaudio

// Device describes one active playback endpoint at enumeration time.
// ID is the opaque, platform-assigned endpoint identifier and is the sole
// key for operations that target a specific device. Name is the friendly
// display name and is not guaranteed unique.
type Device struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	IsDefault bool   `json:"isDefault"`
}

// FormatInfo describes the shared-mode mix format of an endpoint.
type FormatInfo struct {
	SampleRate uint32 `json:"sampleRate"`
	BitDepth   uint16 `json:"bitDepth"`
	Channels   uint16 `json:"channels"`
	BlockAlign uint16 `json:"blockAlign"`
}

// markDefault flags the record whose ID matches defaultID. The comparison is
// exact and case-sensitive. An empty defaultID means no default could be
// resolved and leaves every record unflagged.
func markDefault(devices []Device, defaultID string) {
	for i := range devices {
		devices[i].IsDefault = defaultID != "" && devices[i].ID == defaultID
	}
}

func hasDevice(devices []Device, id string) bool {
	if id == "" {
		return false
	}
	for i := range devices {
		if devices[i].ID == id {
			return true
		}
	}
	return false
}
