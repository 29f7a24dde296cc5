//go:build windows

package com

import (
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
)

// Apartment ties a COM apartment to the calling goroutine for the duration
// of one operation. The apartment model is per OS thread, so the goroutine
// is locked to its thread until Close.
type Apartment struct {
	active bool
}

// NewApartment locks the calling goroutine to its OS thread and initializes
// a multithreaded COM apartment on it.
func NewApartment() (*Apartment, error) {
	runtime.LockOSThread()
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to initialize COM apartment: %w", err)
	}
	return &Apartment{active: true}, nil
}

// Close uninitializes the apartment and unlocks the thread. Safe to call
// more than once and on a nil receiver.
func (a *Apartment) Close() {
	if a == nil || !a.active {
		return
	}
	a.active = false
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}
