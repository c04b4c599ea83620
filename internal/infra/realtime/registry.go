package realtime

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const shardCount = 32

const (
	defaultSendBuffer   = 64
	defaultWriteTimeout = 10 * time.Second
)

// Config tunes the registry's per-connection behavior.
type Config struct {
	SendBufferSize int
	WriteTimeout   time.Duration
}

type shard struct {
	mu      sync.RWMutex
	buckets map[string]map[*Client]struct{}
}

func newShard() *shard {
	return &shard{buckets: make(map[string]map[*Client]struct{})}
}

// Registry is the process-local presence registry. Buckets are sharded by
// key hash so concurrent registrations and emissions on different
// recipients do not contend on one lock.
type Registry struct {
	logger       *slog.Logger
	sendBuffer   int
	writeTimeout time.Duration

	sessions [shardCount]*shard
	devices  [shardCount]*shard

	handleMu sync.RWMutex
	handles  map[string]*Client

	operatorMu sync.RWMutex
	operators  map[*Client]struct{}
}

// New creates an empty registry.
func New(logger *slog.Logger, cfg *Config) *Registry {
	sendBuffer := defaultSendBuffer
	writeTimeout := defaultWriteTimeout
	if cfg != nil {
		if cfg.SendBufferSize > 0 {
			sendBuffer = cfg.SendBufferSize
		}
		if cfg.WriteTimeout > 0 {
			writeTimeout = cfg.WriteTimeout
		}
	}

	r := &Registry{
		logger:       logger,
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
		handles:      make(map[string]*Client),
		operators:    make(map[*Client]struct{}),
	}
	for i := range r.sessions {
		r.sessions[i] = newShard()
		r.devices[i] = newShard()
	}

	return r
}

func sessionKey(recipientID uuid.UUID, kind entity.RecipientKind) string {
	return recipientID.String() + "/" + string(kind)
}

func deviceKey(recipientID uuid.UUID) string {
	return recipientID.String()
}

func (r *Registry) shardFor(pool string, key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	idx := h.Sum32() % shardCount

	if pool == constants.ChannelDevice {
		return r.devices[idx]
	}

	return r.sessions[idx]
}

// RegisterSession adds a session-channel connection for recipientID+kind and
// starts its write pump. Operator sessions additionally join the mirror set.
// The returned client's handle unregisters it.
func (r *Registry) RegisterSession(conn *websocket.Conn, recipientID uuid.UUID, kind entity.RecipientKind) *Client {
	c := newClient(conn, constants.ChannelSession, sessionKey(recipientID, kind), recipientID, kind, "", r.sendBuffer, r.writeTimeout)
	r.register(c)

	if kind == entity.RecipientOperator {
		r.operatorMu.Lock()
		r.operators[c] = struct{}{}
		r.operatorMu.Unlock()
	}

	go c.WritePump()

	return c
}

// RegisterDevice adds a device-channel connection for recipientID and starts
// its write pump.
func (r *Registry) RegisterDevice(conn *websocket.Conn, recipientID uuid.UUID, kind entity.RecipientKind, deviceID string) *Client {
	c := newClient(conn, constants.ChannelDevice, deviceKey(recipientID), recipientID, kind, deviceID, r.sendBuffer, r.writeTimeout)
	r.register(c)

	go c.WritePump()

	return c
}

func (r *Registry) register(c *Client) {
	s := r.shardFor(c.pool, c.key)
	s.mu.Lock()
	set := s.buckets[c.key]
	if set == nil {
		set = make(map[*Client]struct{})
		s.buckets[c.key] = set
	}
	set[c] = struct{}{}
	s.mu.Unlock()

	r.handleMu.Lock()
	r.handles[c.handle] = c
	r.handleMu.Unlock()

	r.logger.Debug("realtime connection registered",
		slog.String("pool", c.pool),
		slog.String("recipient_id", c.recipientID.String()),
		slog.String("kind", string(c.kind)),
	)
}

// Unregister removes the connection behind the handle and closes it.
// Unknown handles are a no-op, so disconnect paths may call it more than
// once.
func (r *Registry) Unregister(handle string) {
	r.handleMu.Lock()
	c, ok := r.handles[handle]
	if ok {
		delete(r.handles, handle)
	}
	r.handleMu.Unlock()
	if !ok {
		return
	}

	s := r.shardFor(c.pool, c.key)
	s.mu.Lock()
	if set := s.buckets[c.key]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(s.buckets, c.key)
		}
	}
	s.mu.Unlock()

	r.operatorMu.Lock()
	delete(r.operators, c)
	r.operatorMu.Unlock()

	c.Close()

	r.logger.Debug("realtime connection unregistered",
		slog.String("pool", c.pool),
		slog.String("recipient_id", c.recipientID.String()),
	)
}

// Acknowledge emits an event to the single connection behind the handle,
// typically the handshake ack. Unknown handles are a no-op.
func (r *Registry) Acknowledge(handle string, event string, payload any) {
	r.handleMu.RLock()
	c, ok := r.handles[handle]
	r.handleMu.RUnlock()
	if !ok {
		return
	}

	frame, err := marshalEnvelope(event, payload)
	if err != nil {
		r.logger.Error("failed to encode realtime event", slog.String("event", event), slog.Any("error", err))

		return
	}

	c.enqueue(frame)
}

// envelope is the wire frame of every emitted event.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func marshalEnvelope(event string, payload any) ([]byte, error) {
	return json.Marshal(&envelope{Event: event, Data: payload})
}

// SessionOnline reports whether recipientID+kind has an open session channel.
func (r *Registry) SessionOnline(recipientID uuid.UUID, kind entity.RecipientKind) bool {
	key := sessionKey(recipientID, kind)
	s := r.shardFor(constants.ChannelSession, key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.buckets[key]) > 0
}

// DeviceOnline reports whether recipientID has an open device channel.
func (r *Registry) DeviceOnline(recipientID uuid.UUID) bool {
	key := deviceKey(recipientID)
	s := r.shardFor(constants.ChannelDevice, key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.buckets[key]) > 0
}

// PushToSession emits an event to every session channel of recipientID+kind.
// Returns true when at least one connection accepted the frame. Clients with
// a full send buffer are dropped from the registry.
func (r *Registry) PushToSession(recipientID uuid.UUID, kind entity.RecipientKind, event string, payload any) bool {
	frame, err := marshalEnvelope(event, payload)
	if err != nil {
		r.logger.Error("failed to encode realtime event", slog.String("event", event), slog.Any("error", err))

		return false
	}

	key := sessionKey(recipientID, kind)

	return r.emit(constants.ChannelSession, key, frame, nil) > 0
}

// PushToDevices emits an event to recipientID's device channels. A non-empty
// deviceID targets only that device. Returns the number of connections the
// frame was handed to.
func (r *Registry) PushToDevices(recipientID uuid.UUID, deviceID string, event string, payload any) int {
	frame, err := marshalEnvelope(event, payload)
	if err != nil {
		r.logger.Error("failed to encode realtime event", slog.String("event", event), slog.Any("error", err))

		return 0
	}

	var filter func(*Client) bool
	if deviceID != "" {
		filter = func(c *Client) bool { return c.deviceID == deviceID }
	}

	return r.emit(constants.ChannelDevice, deviceKey(recipientID), frame, filter)
}

func (r *Registry) emit(pool, key string, frame []byte, filter func(*Client) bool) int {
	s := r.shardFor(pool, key)

	s.mu.RLock()
	targets := make([]*Client, 0, len(s.buckets[key]))
	for c := range s.buckets[key] {
		if filter == nil || filter(c) {
			targets = append(targets, c)
		}
	}
	s.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if c.enqueue(frame) {
			delivered++

			continue
		}
		// A connection that stopped draining its buffer is dead weight;
		// evict it rather than queue behind it.
		r.logger.Warn("dropping slow realtime connection",
			slog.String("pool", c.pool),
			slog.String("recipient_id", c.recipientID.String()),
		)
		r.Unregister(c.handle)
	}

	return delivered
}

// MirrorToOperators best-effort emits an event to every connected operator
// session. Slow operators are skipped, not evicted.
func (r *Registry) MirrorToOperators(event string, payload any) {
	frame, err := marshalEnvelope(event, payload)
	if err != nil {
		r.logger.Error("failed to encode operator mirror event", slog.Any("error", err))

		return
	}

	r.operatorMu.RLock()
	targets := make([]*Client, 0, len(r.operators))
	for c := range r.operators {
		targets = append(targets, c)
	}
	r.operatorMu.RUnlock()

	for _, c := range targets {
		_ = c.enqueue(frame)
	}
}

// CountOnline reports the number of occupied buckets in the given pool,
// which is the number of distinct online recipients (per kind for the
// session pool).
func (r *Registry) CountOnline(pool string) int {
	shards := r.sessions
	if pool == constants.ChannelDevice {
		shards = r.devices
	}

	total := 0
	for _, s := range shards {
		s.mu.RLock()
		total += len(s.buckets)
		s.mu.RUnlock()
	}

	return total
}
