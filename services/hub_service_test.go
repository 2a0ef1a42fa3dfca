package services

import (
	"encoding/json"
	"testing"
	"time"

	"blogpessoal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, client *models.Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-client.Send:
		require.True(t, ok, "send channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func waitClosed(t *testing.T, client *models.Client) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-client.Send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("send channel never closed")
		}
	}
}

func TestHubService_Broadcast(t *testing.T) {
	h := NewHubService()
	defer h.Stop()

	a := models.NewClient(h.GetHub(), nil, "a@x.com")
	b := models.NewClient(h.GetHub(), nil, "b@x.com")
	h.Register(a)
	h.Register(b)

	h.BroadcastToAll(models.EventPostDeleted, map[string]uint{"id": 4})

	for _, c := range []*models.Client{a, b} {
		var msg struct {
			Type string          `json:"type"`
			Data map[string]uint `json:"data"`
		}
		require.NoError(t, json.Unmarshal(receive(t, c), &msg))
		assert.Equal(t, models.EventPostDeleted, msg.Type)
		assert.Equal(t, uint(4), msg.Data["id"])
	}
}

func TestHubService_Unregister(t *testing.T) {
	h := NewHubService()
	defer h.Stop()

	c := models.NewClient(h.GetHub(), nil, "a@x.com")
	h.Register(c)
	h.Unregister(c)
	waitClosed(t, c)

	// A second unregister must not close the channel again.
	h.Unregister(c)
	h.BroadcastToAll(models.EventPostCreated, nil)
}

func TestHubService_Stop(t *testing.T) {
	h := NewHubService()

	c := models.NewClient(h.GetHub(), nil, "a@x.com")
	h.Register(c)
	h.Stop()
	h.Stop()
	waitClosed(t, c)

	late := models.NewClient(h.GetHub(), nil, "b@x.com")
	h.Register(late)
	waitClosed(t, late)

	// Neither call may block once the hub has stopped.
	h.BroadcastToAll(models.EventPostCreated, nil)
	h.Unregister(c)
}
