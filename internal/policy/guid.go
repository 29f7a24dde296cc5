// Package policy reaches the undocumented IPolicyConfig COM interface that
// reassigns per-role default audio endpoints. The interface is not part of
// the documented Core Audio API surface; the class and interface identifiers
// below are fixed but version-dependent, which is why everything here stays
// behind the Switcher type.
package policy

import "github.com/go-ole/go-ole"

var (
	CLSID_PolicyConfigClient = ole.NewGUID("{870af99c-171d-4f9e-af0d-e63df40c2bc9}")
	IID_IPolicyConfig        = ole.NewGUID("{f8679f50-850a-41cf-9c72-430f290290c8}")

	// Vista-era fallback, still present on some builds.
	CLSID_PolicyConfigVistaClient = ole.NewGUID("{294935CE-F637-4E7C-A41B-AB255460B862}")
	IID_IPolicyConfigVista        = ole.NewGUID("{568b9108-44bf-40b4-9006-86afe5b5a620}")
)
