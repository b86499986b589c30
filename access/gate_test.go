package access

import (
	"context"
	"regexp"
	"testing"

	badgerstore "github.com/mercaderia/pricebook/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deviceIDPattern = regexp.MustCompile(`^USR-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}$`)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	_, deviceRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		deviceRepo.Close()
		backend.Close()
	})

	gate, err := NewGate(deviceRepo)
	require.NoError(t, err)
	return gate
}

func TestNewGate_NilRepository(t *testing.T) {
	_, err := NewGate(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestGate_EnsureDeviceID(t *testing.T) {
	gate := newTestGate(t)
	ctx := context.Background()

	id, err := gate.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Regexp(t, deviceIDPattern, id)

	again, err := gate.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestGate_Check(t *testing.T) {
	gate := newTestGate(t)
	ctx := context.Background()

	id, err := gate.EnsureDeviceID(ctx)
	require.NoError(t, err)

	boolPtr := func(b bool) *bool { return &b }

	t.Run("unknown device", func(t *testing.T) {
		decision, user, err := gate.Check(ctx, &UserList{})
		require.NoError(t, err)
		assert.Equal(t, DeniedUnknown, decision)
		assert.Nil(t, user)
	})

	t.Run("nil list denies", func(t *testing.T) {
		decision, _, err := gate.Check(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, DeniedUnknown, decision)
	})

	t.Run("active user allowed", func(t *testing.T) {
		list := &UserList{Users: []User{{ID: id, Name: "Tienda Centro", Active: boolPtr(true)}}}
		decision, user, err := gate.Check(ctx, list)
		require.NoError(t, err)
		assert.Equal(t, Allowed, decision)
		require.NotNil(t, user)
		assert.Equal(t, "Tienda Centro", user.Name)
	})

	t.Run("missing active flag means allowed", func(t *testing.T) {
		list := &UserList{Users: []User{{ID: id, Name: "Sin Flag"}}}
		decision, _, err := gate.Check(ctx, list)
		require.NoError(t, err)
		assert.Equal(t, Allowed, decision)
	})

	t.Run("deactivated user denied", func(t *testing.T) {
		list := &UserList{Users: []User{{ID: id, Active: boolPtr(false)}}}
		decision, user, err := gate.Check(ctx, list)
		require.NoError(t, err)
		assert.Equal(t, DeniedInactive, decision)
		assert.NotNil(t, user)
	})
}

func TestParseUserList(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		list, err := ParseUserList([]byte(`{"users":[{"id":"USR-AAAA-BBBB","name":"Uno","active":true}]}`))
		require.NoError(t, err)
		require.Len(t, list.Users, 1)
		assert.Equal(t, "USR-AAAA-BBBB", list.Users[0].ID)
	})

	t.Run("missing users array", func(t *testing.T) {
		list, err := ParseUserList([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, list.Users)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseUserList([]byte("nope"))
		assert.Error(t, err)
	})
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "denied: deactivated", DeniedInactive.String())
	assert.Equal(t, "denied: unknown device", DeniedUnknown.String())
}
