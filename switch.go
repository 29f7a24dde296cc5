package winaudio

// Role is a platform usage context with its own default-endpoint
// assignment. The numeric values match the platform's ERole enumeration.
type Role uint32

const (
	RoleConsole Role = iota
	RoleMultimedia
	RoleCommunications
)

func (r Role) String() string {
	switch r {
	case RoleConsole:
		return "console"
	case RoleMultimedia:
		return "multimedia"
	case RoleCommunications:
		return "communications"
	default:
		return "unknown"
	}
}

// playbackRoles lists every role a default playback device is assigned
// under, in the order the assignments are issued.
var playbackRoles = [...]Role{RoleConsole, RoleMultimedia, RoleCommunications}

// EndpointSwitcher reassigns the default endpoint for a single role. The
// production implementation sits on the undocumented policy-config object;
// the indirection keeps that ABI dependency behind one narrow seam.
type EndpointSwitcher interface {
	SetDefaultEndpoint(deviceID string, role Role) error
}

// switchAllRoles issues one assignment per role. All roles are always
// attempted; the result is true only when every assignment succeeded.
// There is no rollback, so a false result can leave some roles already
// reassigned.
func switchAllRoles(sw EndpointSwitcher, deviceID string) bool {
	ok := true
	for _, role := range playbackRoles {
		if err := sw.SetDefaultEndpoint(deviceID, role); err != nil {
			ok = false
		}
	}
	return ok
}
