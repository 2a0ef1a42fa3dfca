package models

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks the feed's connected clients. Its maps are owned by the
// goroutine running services.HubService.Run.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

type Client struct {
	ID    string
	Hub   *Hub
	Conn  *websocket.Conn
	Send  chan []byte
	Login string
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	EventPostCreated = "postagem_criada"
	EventPostUpdated = "postagem_atualizada"
	EventPostDeleted = "postagem_removida"
)

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, login string) *Client {
	return &Client{
		ID:    uuid.New().String(),
		Hub:   hub,
		Conn:  conn,
		Send:  make(chan []byte, 256),
		Login: login,
	}
}
