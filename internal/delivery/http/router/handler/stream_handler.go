package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/config"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"
	"pulse/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	defaultReadLimit   = 4 * 1024
	defaultPongTimeout = 60 * time.Second
)

// StreamHandler upgrades HTTP requests to websocket connections and hands
// them to the presence registry. Presence is transient: a registration lives
// exactly as long as its connection.
type StreamHandler struct {
	registry    *realtime.Registry
	verifier    service.ConnectionVerifier
	logger      *slog.Logger
	upgrader    websocket.Upgrader
	readLimit   int64
	pongTimeout time.Duration
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(registry *realtime.Registry, verifier service.ConnectionVerifier, cfg *config.Config, logger *slog.Logger) *StreamHandler {
	readLimit := int64(defaultReadLimit)
	pongTimeout := defaultPongTimeout
	if cfg.Realtime != nil {
		if cfg.Realtime.ReadLimit > 0 {
			readLimit = cfg.Realtime.ReadLimit
		}
		if cfg.Realtime.PongTimeout > 0 {
			pongTimeout = cfg.Realtime.PongTimeout
		}
	}

	return &StreamHandler{
		registry: registry,
		verifier: verifier,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth happens before registration; cross-origin browser
			// clients are expected.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		readLimit:   readLimit,
		pongTimeout: pongTimeout,
	}
}

// Session handles session-channel websocket connections. One logical session
// pool entry per recipient and kind; operator sessions additionally join the
// monitor mirror set.
func (h *StreamHandler) Session(c echo.Context) error {
	identity, err := h.authenticate(c)
	if identity == nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		return nil
	}

	client := h.registry.RegisterSession(conn, identity.RecipientID, identity.RecipientKind)
	h.serve(conn, client.Handle(), constants.ChannelSession, identity)

	return nil
}

// Device handles device-channel websocket connections. The device ID claim
// is required so targeted device pushes can route to a single device.
func (h *StreamHandler) Device(c echo.Context) error {
	identity, err := h.authenticate(c)
	if identity == nil {
		return err
	}
	if identity.DeviceID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "device_id claim is required for device connections")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}

	client := h.registry.RegisterDevice(conn, identity.RecipientID, identity.RecipientKind, identity.DeviceID)
	h.serve(conn, client.Handle(), constants.ChannelDevice, identity)

	return nil
}

// authenticate verifies the handshake credential carried in the query string.
func (h *StreamHandler) authenticate(c echo.Context) (*service.Identity, error) {
	credential := c.QueryParam("token")
	if credential == "" {
		return nil, response.Unauthorized(c, "CONNECTION_REJECTED", "Missing connection token")
	}

	identity, err := h.verifier.Verify(credential)
	if err != nil {
		h.logger.Warn("Rejected realtime handshake",
			slog.String("remote_ip", c.RealIP()),
			slog.Any("error", err),
		)

		return nil, response.Unauthorized(c, "CONNECTION_REJECTED", "Invalid connection token")
	}

	return identity, nil
}

// serve acknowledges the connection and blocks on the read loop until the
// peer disconnects, then removes the registration.
func (h *StreamHandler) serve(conn *websocket.Conn, handle, pool string, identity *service.Identity) {
	defer h.registry.Unregister(handle)

	h.registry.Acknowledge(handle, constants.EventConnected, map[string]string{
		"channel":        pool,
		"recipient_id":   identity.RecipientID.String(),
		"recipient_kind": string(identity.RecipientKind),
	})

	conn.SetReadLimit(h.readLimit)
	conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	})

	// Inbound frames are drained and discarded; the channels are
	// server-to-client only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Realtime connection closed unexpectedly",
					slog.String("pool", pool),
					slog.Any("error", err),
				)
			}

			return
		}
	}
}
