package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogoutRoundTrip(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, 0, ctx.ActiveCount())

	ctx.Login(Session{
		SessionID:    "s1",
		UserID:       7,
		UserName:     "jdoe",
		EmployeeName: "John Doe",
		Role:         "Engineer",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	got, ok := ctx.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "jdoe", got.UserName)
	assert.True(t, ctx.IsAuthenticated("s1"))

	ctx.Logout("s1")

	_, ok = ctx.Get("s1")
	assert.False(t, ok)
	assert.False(t, ctx.IsAuthenticated("s1"))
	assert.Equal(t, 0, ctx.ActiveCount())
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := NewContext()
	ctx.Login(Session{SessionID: "s1", UserName: "jdoe", ExpiresAt: time.Now().Add(time.Hour)})

	got, ok := ctx.Get("s1")
	require.True(t, ok)
	got.UserName = "tampered"

	again, ok := ctx.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "jdoe", again.UserName)
}

func TestExpiredSessionIsDropped(t *testing.T) {
	ctx := NewContext()
	ctx.Login(Session{SessionID: "s1", ExpiresAt: time.Now().Add(-time.Minute)})

	_, ok := ctx.Get("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.ActiveCount())
}

func TestUnknownSession(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.IsAuthenticated("nope"))
}

func TestDropOthersRevokesPriorLogins(t *testing.T) {
	ctx := NewContext()
	expires := time.Now().Add(time.Hour)
	ctx.Login(Session{SessionID: "s-old", UserID: 1, UserName: "jdoe", ExpiresAt: expires})
	ctx.Login(Session{SessionID: "s-new", UserID: 1, UserName: "jdoe", ExpiresAt: expires})
	ctx.Login(Session{SessionID: "s-other", UserID: 2, UserName: "asmith", ExpiresAt: expires})

	ctx.DropOthers(1, "s-new")

	_, ok := ctx.Get("s-old")
	assert.False(t, ok)
	assert.True(t, ctx.IsAuthenticated("s-new"))
	assert.True(t, ctx.IsAuthenticated("s-other"))
	assert.Equal(t, 2, ctx.ActiveCount())
}
