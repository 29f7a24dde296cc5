//go:build !windows

package winaudio

// The Core Audio and policy-config interfaces only exist on Windows. These
// stubs keep the package loadable elsewhere so portable callers and tests
// still build.

func ListDevices() ([]Device, error) { return nil, ErrUnsupported }

func SetDefaultDevice(deviceID string) (bool, error) { return false, ErrUnsupported }

func SetDefaultPlaybackMute(mute bool) (bool, error) { return false, ErrUnsupported }

func MuteDevice(deviceID string, mute bool) (bool, error) { return false, ErrUnsupported }

func DefaultPlaybackMuted() (bool, error) { return false, ErrUnsupported }

func DeviceMuted(deviceID string) (bool, error) { return false, ErrUnsupported }

func DeviceFormat(deviceID string) (FormatInfo, error) { return FormatInfo{}, ErrUnsupported }
