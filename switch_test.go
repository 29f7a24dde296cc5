package winaudio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSwitcher struct {
	calls   []Role
	failing map[Role]error
}

func (f *fakeSwitcher) SetDefaultEndpoint(deviceID string, role Role) error {
	f.calls = append(f.calls, role)
	return f.failing[role]
}

func TestSwitchAllRolesSucceeds(t *testing.T) {
	sw := &fakeSwitcher{}

	ok := switchAllRoles(sw, "dev-1")

	assert.True(t, ok)
	assert.Equal(t, []Role{RoleConsole, RoleMultimedia, RoleCommunications}, sw.calls)
}

func TestSwitchAllRolesPartialFailure(t *testing.T) {
	sw := &fakeSwitcher{failing: map[Role]error{
		RoleMultimedia: errors.New("access denied"),
	}}

	ok := switchAllRoles(sw, "dev-1")

	assert.False(t, ok)
	// Every role is still attempted even after a failure.
	assert.Len(t, sw.calls, 3)
}

func TestSwitchAllRolesAllFail(t *testing.T) {
	boom := errors.New("boom")
	sw := &fakeSwitcher{failing: map[Role]error{
		RoleConsole:        boom,
		RoleMultimedia:     boom,
		RoleCommunications: boom,
	}}

	assert.False(t, switchAllRoles(sw, "dev-1"))
	assert.Len(t, sw.calls, 3)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "console", RoleConsole.String())
	assert.Equal(t, "multimedia", RoleMultimedia.String())
	assert.Equal(t, "communications", RoleCommunications.String())
	assert.Equal(t, "unknown", Role(42).String())
}
