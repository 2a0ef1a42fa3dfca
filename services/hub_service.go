package services

import (
	"encoding/json"
	"sync"

	"blogpessoal/logger"
	"blogpessoal/models"

	"go.uber.org/zap"
)

// HubService owns the feed hub. A single goroutine (Run) mutates the client
// set; everything else talks to it over the hub's channels.
type HubService struct {
	hub      *models.Hub
	done     chan struct{}
	stopOnce sync.Once
	log      *zap.Logger
}

func NewHubService() *HubService {
	service := &HubService{
		hub:  models.NewHub(),
		done: make(chan struct{}),
		log:  logger.Named("hub"),
	}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.hub.Clients[client] = true
			h.log.Debug("client registered", zap.String("client_id", client.ID), zap.String("login", client.Login))

		case client := <-h.hub.Unregister:
			h.removeClient(client)

		case message := <-h.hub.Broadcast:
			for client := range h.hub.Clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer: drop it rather than stall the feed.
					h.removeClient(client)
				}
			}

		case <-h.done:
			for client := range h.hub.Clients {
				h.removeClient(client)
			}
			return
		}
	}
}

// Stop disconnects every client and ends Run. Later calls are no-ops.
func (h *HubService) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *HubService) Register(client *models.Client) {
	select {
	case h.hub.Register <- client:
	case <-h.done:
		close(client.Send)
	}
}

func (h *HubService) Unregister(client *models.Client) {
	select {
	case h.hub.Unregister <- client:
	case <-h.done:
	}
}

func (h *HubService) BroadcastToAll(messageType string, data interface{}) {
	message, err := json.Marshal(models.WSMessage{Type: messageType, Data: data})
	if err != nil {
		h.log.Error("marshal feed message", zap.String("type", messageType), zap.Error(err))
		return
	}

	select {
	case h.hub.Broadcast <- message:
	case <-h.done:
	}
}

func (h *HubService) removeClient(client *models.Client) {
	if _, ok := h.hub.Clients[client]; !ok {
		return
	}
	delete(h.hub.Clients, client)
	close(client.Send)
	h.log.Debug("client unregistered", zap.String("client_id", client.ID), zap.String("login", client.Login))
}
