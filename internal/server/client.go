package server

import (
	"net/http"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/engine"
	"github.com/kevrgithub/tibianer-old/internal/network"
	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client pumps frames to one websocket and commands from it into the
// game loop. Every client drives the same player.
type Client struct {
	Loop   *engine.Loop
	Hub    *network.Broadcaster
	Conn   *websocket.Conn
	id     uint64
	frames <-chan api.FrameResponse
	log    *logrus.Entry
}

func NewClient(loop *engine.Loop, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	id, frames := hub.Subscribe()
	return &Client{
		Loop:   loop,
		Hub:    hub,
		Conn:   conn,
		id:     id,
		frames: frames,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"client":    id,
			"remote":    conn.RemoteAddr().String(),
		}),
	}
}

// readPump reads commands until the connection drops. Closing the
// subscription stops writePump.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unsubscribe(c.id)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("Close failed.")
		}
		c.log.Info("Client disconnected.")
	}()
	c.log.Info("Client connected.")

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("Failed to set read deadline.")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("Websocket read failed.")
			}
			return
		}
		c.Loop.Submit(cmd)
	}
}

// writePump sends frames and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.frames:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("Failed to set write deadline.")
			}
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(frame); err != nil {
				c.log.WithError(err).Debug("Frame write failed.")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("Failed to set ping deadline.")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("Ping failed.")
				return
			}
		}
	}
}
