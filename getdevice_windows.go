//go:build windows

package winaudio

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
	"golang.org/x/sys/windows"
)

// getDevice resolves an endpoint directly by ID through
// IMMDeviceEnumerator::GetDevice. go-wca ships that method as a stub that
// always returns E_NOTIMPL, so the call goes through the vtable directly.
func getDevice(mmde *wca.IMMDeviceEnumerator, deviceID string, ppDevice **wca.IMMDevice) error {
	idPtr, err := windows.UTF16PtrFromString(deviceID)
	if err != nil {
		return err
	}

	hr, _, _ := syscall.SyscallN(
		mmde.VTable().GetDevice,
		uintptr(unsafe.Pointer(mmde)),
		uintptr(unsafe.Pointer(idPtr)),
		uintptr(unsafe.Pointer(ppDevice)),
	)
	if hr != 0 {
		return ole.NewError(hr)
	}

	return nil
}
