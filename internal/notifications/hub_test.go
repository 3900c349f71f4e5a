package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(10, nil)
	require.NoError(t, err)
	assert.True(t, hub.IsOnline(10))
	assert.Equal(t, 1, hub.ConnectionCount())

	hub.UnregisterClient(client)
	assert.False(t, hub.IsOnline(10))
	assert.Equal(t, 0, hub.ConnectionCount())

	// Unregistering twice must not corrupt the count.
	hub.UnregisterClient(client)
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestHub_PerUserConnectionLimit(t *testing.T) {
	hub := NewHub()

	for i := 0; i < maxConnsPerUser; i++ {
		_, err := hub.Register(5, nil)
		require.NoError(t, err)
	}

	_, err := hub.Register(5, nil)
	assert.Error(t, err)

	// Other users are unaffected.
	_, err = hub.Register(6, nil)
	assert.NoError(t, err)
}

func TestHub_BroadcastTargetsOnlyTheUser(t *testing.T) {
	hub := NewHub()

	c1, err := hub.Register(1, nil)
	require.NoError(t, err)
	c2, err := hub.Register(2, nil)
	require.NoError(t, err)

	hub.Broadcast(1, `{"type":"notification"}`)

	select {
	case msg := <-c1.Send:
		assert.JSONEq(t, `{"type":"notification"}`, string(msg))
	default:
		t.Fatal("expected user 1 to receive the message")
	}

	select {
	case <-c2.Send:
		t.Fatal("user 2 must not receive user 1's notification")
	default:
	}
}

func TestHub_BroadcastAll(t *testing.T) {
	hub := NewHub()

	c1, err := hub.Register(1, nil)
	require.NoError(t, err)
	c2, err := hub.Register(2, nil)
	require.NoError(t, err)

	hub.BroadcastAll("ping")

	for _, c := range []*Client{c1, c2} {
		select {
		case msg := <-c.Send:
			assert.Equal(t, "ping", string(msg))
		default:
			t.Fatalf("expected user %d to receive the broadcast", c.UserID)
		}
	}
}
