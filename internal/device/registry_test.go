//go:build unit

package device_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const validToken = "controller-secret"

func newRegistry(clk clock.Clock) *device.Registry {
	return device.NewRegistry(tokenSet{validToken: true}, clk, discardLogger())
}

func TestRegistryConnect(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("registers session", func(t *testing.T) {
		reg := newRegistry(clock.NewMockClock(now))
		tr := &fakeTransport{}

		require.NoError(t, reg.Connect("D1", validToken, tr))
		assert.True(t, reg.IsOnline("D1"))

		got, ok := reg.Lookup("D1")
		require.True(t, ok)
		assert.Same(t, tr, got)

		sessions := reg.ListOnline()
		require.Len(t, sessions, 1)
		assert.Equal(t, "D1", sessions[0].DeviceID)
		assert.Equal(t, now, sessions[0].ConnectedAt)
	})

	t.Run("rejects", func(t *testing.T) {
		testCases := []struct {
			name     string
			deviceID string
			token    string
		}{
			{name: "empty device id", deviceID: "", token: validToken},
			{name: "blank device id", deviceID: "  ", token: validToken},
			{name: "wrong token", deviceID: "D1", token: "nope"},
			{name: "empty token", deviceID: "D1", token: ""},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				reg := newRegistry(clock.NewMockClock(now))

				err := reg.Connect(tc.deviceID, tc.token, &fakeTransport{})
				require.ErrorIs(t, err, errs.ErrUnauthenticated)
				assert.Empty(t, reg.ListOnline())
			})
		}
	})

	t.Run("last connect wins", func(t *testing.T) {
		reg := newRegistry(clock.NewMockClock(now))
		first := &fakeTransport{}
		second := &fakeTransport{}

		require.NoError(t, reg.Connect("D1", validToken, first))
		require.NoError(t, reg.Connect("D1", validToken, second))

		got, ok := reg.Lookup("D1")
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.True(t, first.IsClosed())
		assert.False(t, second.IsClosed())
		assert.Len(t, reg.ListOnline(), 1)
	})
}

func TestRegistryDisconnect(t *testing.T) {
	reg := newRegistry(clock.NewRealClock())

	t.Run("removes own session", func(t *testing.T) {
		tr := &fakeTransport{}
		require.NoError(t, reg.Connect("D1", validToken, tr))

		id, removed := reg.Disconnect(tr)
		assert.True(t, removed)
		assert.Equal(t, "D1", id)
		assert.False(t, reg.IsOnline("D1"))
	})

	t.Run("stale transport keeps newer session", func(t *testing.T) {
		old := &fakeTransport{}
		fresh := &fakeTransport{}
		require.NoError(t, reg.Connect("D2", validToken, old))
		require.NoError(t, reg.Connect("D2", validToken, fresh))

		_, removed := reg.Disconnect(old)
		assert.False(t, removed)
		assert.True(t, reg.IsOnline("D2"))
	})

	t.Run("unknown transport", func(t *testing.T) {
		_, removed := reg.Disconnect(&fakeTransport{})
		assert.False(t, removed)
	})
}

func TestRegistryDiagnostics(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	reg := newRegistry(clk)
	require.NoError(t, reg.Connect("D1", validToken, &fakeTransport{}))

	_, ok := reg.GetDiagnostic("D1")
	assert.False(t, ok, "no diagnostic reported yet")

	clk.Add(time.Minute)
	reg.RecordDiagnostic("D1", 120000, -61)

	diag, ok := reg.GetDiagnostic("D1")
	require.True(t, ok)
	assert.Equal(t, device.Diagnostic{UptimeMs: 120000, WifiRSSI: -61, ReportedAt: now.Add(time.Minute)}, diag)

	sessions := reg.ListOnline()
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Diagnostic)
	assert.Equal(t, -61, sessions[0].Diagnostic.WifiRSSI)

	reg.RecordDiagnostic("ghost", 1, 1)
	assert.False(t, reg.IsOnline("ghost"))
	_, ok = reg.GetDiagnostic("ghost")
	assert.False(t, ok)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := newRegistry(clock.NewRealClock())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("D%d", i%5)
			tr := &fakeTransport{}
			_ = reg.Connect(id, validToken, tr)
			reg.RecordDiagnostic(id, int64(i), -50)
			reg.IsOnline(id)
			reg.ListOnline()
			if i%2 == 0 {
				reg.Disconnect(tr)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, len(reg.ListOnline()), 5)
}

func TestHashAllowList(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(validToken), bcrypt.MinCost)
	require.NoError(t, err)

	list := device.NewHashAllowList([]string{"", " " + string(hash) + " "})

	assert.True(t, list.Verify(validToken))
	assert.False(t, list.Verify("other"))
	assert.False(t, list.Verify(""))
	assert.False(t, device.NewHashAllowList(nil).Verify(validToken))
}
