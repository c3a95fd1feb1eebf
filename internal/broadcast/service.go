// Service layer of the viewer broadcaster in Callboard.
// One topic, many viewers, at-most-once best-effort delivery.

package broadcast

import (
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/pkg/log"
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Number of serialized events a viewer may lag behind before new ones are dropped for it.
const sendBufferSize = 32

type Service interface {
	// Register adds conn to the active viewers and starts its write pump.
	Register(ctx context.Context, conn Conn) *Client
	// Unregister removes client and closes its connection. Safe to call more than once.
	Unregister(ctx context.Context, client *Client)
	// Publish serializes event once and offers it to every registered viewer without blocking.
	Publish(ctx context.Context, event entity.Event)
	// Count returns the number of registered viewers.
	Count() int
	// Close unregisters every viewer and refuses new ones, used during graceful shutdown.
	Close(ctx context.Context) error
}

// Object of this will be passed around from main to routers to API.
// Owns the connection set, there is no package level state.
type service struct {
	logger       log.Logger
	metrics      *metrics.Collector
	pingInterval time.Duration
	writeTimeout time.Duration

	// Guards clients and closed. Publish holds it for the whole fan-out so events
	// reach every buffer in the order Publish was called.
	mu      sync.Mutex
	clients map[*Client]struct{}
	closed  bool
}

// Helps to access the service layer interface and call methods. Service object is passed from main.
// pingInterval of 0 disables keepalive pings.
func NewService(logger log.Logger, collector *metrics.Collector, pingInterval time.Duration) Service {
	return &service{
		logger:       logger,
		metrics:      collector,
		pingInterval: pingInterval,
		writeTimeout: 10 * time.Second,
		clients:      make(map[*Client]struct{}),
	}
}

func (s *service) Register(ctx context.Context, conn Conn) *Client {
	client := newClient(conn)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return client
	}
	s.clients[client] = struct{}{}
	total := len(s.clients)
	s.mu.Unlock()

	s.metrics.ViewerConnected()
	s.logger.WithCtx(ctx).Info().Str("viewer", client.ID).Int("viewers", total).Msg("Viewer registered")

	go client.writePump(s)
	return client
}

func (s *service) Unregister(ctx context.Context, client *Client) {
	s.mu.Lock()
	if _, ok := s.clients[client]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, client)
	// Closing under the lock, Publish never sends on a closed channel.
	close(client.send)
	total := len(s.clients)
	s.mu.Unlock()

	s.metrics.ViewerDisconnected()
	s.logger.WithCtx(ctx).Info().Str("viewer", client.ID).Int("viewers", total).Msg("Viewer unregistered")
}

func (s *service) Publish(ctx context.Context, event entity.Event) {
	payload, mrserr := json.Marshal(event)
	if mrserr != nil {
		s.logger.WithCtx(ctx).Error().Err(mrserr).Str("type", string(event.Type)).Msg("Couldn't serialize event")
		return
	}

	s.mu.Lock()
	delivered, dropped := 0, 0
	for client := range s.clients {
		select {
		case client.send <- payload:
			delivered++
		default:
			// Slow viewer, this event is lost for it.
			dropped++
		}
	}
	s.mu.Unlock()

	s.metrics.EventPublished(string(event.Type))
	s.metrics.DeliveriesDropped(dropped)
	s.logger.WithCtx(ctx).Debug().
		Str("type", string(event.Type)).
		Int("delivered", delivered).
		Int("dropped", dropped).
		Msg("Event published")
}

func (s *service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.Unlock()

	for _, client := range clients {
		s.Unregister(ctx, client)
	}
	s.logger.WithCtx(ctx).Info().Int("viewers", len(clients)).Msg("Broadcaster closed")
	return nil
}
