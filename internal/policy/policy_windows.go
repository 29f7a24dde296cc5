//go:build windows

package policy

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/sameerbk201/winaudio/internal/com"
)

// IPolicyConfig mirrors the undocumented interface vtable. Only
// SetDefaultEndpoint is called; the remaining slots exist to keep the
// method offsets correct.
type IPolicyConfig struct {
	ole.IUnknown
}

type IPolicyConfigVtbl struct {
	ole.IUnknownVtbl
	GetMixFormat          uintptr
	GetDeviceFormat       uintptr
	ResetDeviceFormat     uintptr
	SetDeviceFormat       uintptr
	GetProcessingPeriod   uintptr
	SetProcessingPeriod   uintptr
	GetShareMode          uintptr
	SetShareMode          uintptr
	GetPropertyValue      uintptr
	SetPropertyValue      uintptr
	SetDefaultEndpoint    uintptr
	SetEndpointVisibility uintptr
}

func (v *IPolicyConfig) VTable() *IPolicyConfigVtbl {
	return (*IPolicyConfigVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *IPolicyConfig) SetDefaultEndpoint(deviceID string, role uint32) error {
	return setDefaultEndpoint(v.VTable().SetDefaultEndpoint, unsafe.Pointer(v), deviceID, role)
}

// IPolicyConfigVista is the Vista-era variant; its vtable lacks
// ResetDeviceFormat, so it needs its own layout.
type IPolicyConfigVista struct {
	ole.IUnknown
}

type IPolicyConfigVistaVtbl struct {
	ole.IUnknownVtbl
	GetMixFormat          uintptr
	GetDeviceFormat       uintptr
	SetDeviceFormat       uintptr
	GetProcessingPeriod   uintptr
	SetProcessingPeriod   uintptr
	GetShareMode          uintptr
	SetShareMode          uintptr
	GetPropertyValue      uintptr
	SetPropertyValue      uintptr
	SetDefaultEndpoint    uintptr
	SetEndpointVisibility uintptr
}

func (v *IPolicyConfigVista) VTable() *IPolicyConfigVistaVtbl {
	return (*IPolicyConfigVistaVtbl)(unsafe.Pointer(v.RawVTable))
}

func (v *IPolicyConfigVista) SetDefaultEndpoint(deviceID string, role uint32) error {
	return setDefaultEndpoint(v.VTable().SetDefaultEndpoint, unsafe.Pointer(v), deviceID, role)
}

func setDefaultEndpoint(method uintptr, this unsafe.Pointer, deviceID string, role uint32) error {
	idPtr, err := windows.UTF16PtrFromString(deviceID)
	if err != nil {
		return fmt.Errorf("failed to encode device ID: %w", err)
	}

	hr, _, _ := syscall.SyscallN(
		method,
		uintptr(this),
		uintptr(unsafe.Pointer(idPtr)),
		uintptr(role),
	)
	if hr != 0 {
		return ole.NewError(hr)
	}

	return nil
}

// Switcher owns one policy-config object for the duration of a default-device
// switch. It prefers the current client and falls back to the Vista one.
type Switcher struct {
	pc    *IPolicyConfig
	vista *IPolicyConfigVista
}

// NewSwitcher instantiates the policy-config COM object. Failure of both
// class identifiers means the platform does not expose the interface.
func NewSwitcher() (*Switcher, error) {
	unk, err := ole.CreateInstance(CLSID_PolicyConfigClient, IID_IPolicyConfig)
	if err == nil {
		return &Switcher{pc: (*IPolicyConfig)(unsafe.Pointer(unk))}, nil
	}

	unk, vistaErr := ole.CreateInstance(CLSID_PolicyConfigVistaClient, IID_IPolicyConfigVista)
	if vistaErr != nil {
		return nil, fmt.Errorf("failed to create PolicyConfig client: %w", err)
	}

	return &Switcher{vista: (*IPolicyConfigVista)(unsafe.Pointer(unk))}, nil
}

// SetDefaultEndpoint assigns the endpoint as the default for one role.
func (s *Switcher) SetDefaultEndpoint(deviceID string, role uint32) error {
	if s.pc != nil {
		return s.pc.SetDefaultEndpoint(deviceID, role)
	}
	return s.vista.SetDefaultEndpoint(deviceID, role)
}

// Close releases the underlying policy-config object.
func (s *Switcher) Close() {
	if s == nil {
		return
	}
	com.Release(&s.pc)
	com.Release(&s.vista)
}
