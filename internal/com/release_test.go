package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHandle struct {
	releases int
}

func (f *fakeHandle) Release() int32 {
	f.releases++
	return 0
}

func TestReleaseClearsPointer(t *testing.T) {
	h := &fakeHandle{}
	p := h

	Release(&p)

	assert.Equal(t, 1, h.releases)
	assert.Nil(t, p)
}

func TestReleaseTwiceReleasesOnce(t *testing.T) {
	h := &fakeHandle{}
	p := h

	Release(&p)
	Release(&p)

	assert.Equal(t, 1, h.releases)
}

func TestReleaseNilPointer(t *testing.T) {
	var p *fakeHandle
	Release(&p)

	assert.Nil(t, p)
}

func TestReleaseNilIndirect(t *testing.T) {
	// Must not panic.
	Release[*fakeHandle](nil)
}
