// Package realtime maintains the persistent push-notification channel and
// surfaces its lifecycle to the rest of the application.
package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/siakad-id/siakad/core"
)

// State is the channel's status.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Errored
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Errored:
		return "errored"
	default:
		return "disconnected"
	}
}

type (
	EventKind int

	// Event is one transport lifecycle notification.
	Event struct {
		Kind   EventKind
		Detail error
	}

	// Transport is the concrete push-messaging client. It owns reconnection
	// and backoff; the supervisor only observes the events it emits.
	Transport interface {
		// Connect establishes the channel and returns the stream of
		// lifecycle events. The stream closes when the transport stops.
		Connect(ctx context.Context) (<-chan Event, error)
		Close() error
	}

	// Supervisor owns exactly one live channel per application session.
	// Listeners are notified fire-and-forget: they can neither block nor
	// cancel a transition.
	Supervisor struct {
		transport Transport
		logger    core.Logger

		mu             sync.RWMutex
		state          State
		started        bool
		onConnected    []func()
		onDisconnected []func()
		onError        []func(err error)

		done chan struct{}
	}
)

const (
	EventConnecting EventKind = iota
	EventConnected
	EventDisconnected
	EventError
)

var (
	once     sync.Once
	instance *Supervisor
)

// NewSupervisor returns the process-wide supervisor, creating it on first
// call; later calls return the same instance regardless of arguments.
func NewSupervisor(transport Transport, logger core.Logger) *Supervisor {
	once.Do(func() {
		instance = newSupervisor(transport, logger)
	})
	return instance
}

func newSupervisor(transport Transport, logger core.Logger) *Supervisor {
	return &Supervisor{
		transport: transport,
		logger:    logger,
		state:     Disconnected,
		done:      make(chan struct{}),
	}
}

func (s *Supervisor) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Supervisor) OnConnected(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onConnected = append(s.onConnected, fn)
}

func (s *Supervisor) OnDisconnected(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDisconnected = append(s.onDisconnected, fn)
}

func (s *Supervisor) OnError(fn func(err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = append(s.onError, fn)
}

// Connect starts the transport and begins observing its lifecycle.
func (s *Supervisor) Connect(ctx context.Context) error {
	s.setState(Connecting)

	events, err := s.transport.Connect(ctx)
	if err != nil {
		s.setState(Errored)
		s.dispatchError(err)
		return err
	}

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go s.observe(events)
	return nil
}

// Close stops the transport; the event stream drains and closes.
func (s *Supervisor) Close() error {
	err := s.transport.Close()
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if started {
		<-s.done
	}
	return err
}

func (s *Supervisor) observe(events <-chan Event) {
	defer close(s.done)
	for ev := range events {
		switch ev.Kind {
		case EventConnecting:
			s.setState(Connecting)
		case EventConnected:
			s.setState(Connected)
			s.dispatch(s.listeners(&s.onConnected))
		case EventDisconnected:
			s.setState(Disconnected)
			s.dispatch(s.listeners(&s.onDisconnected))
		case EventError:
			s.setState(Errored)
			s.dispatchError(ev.Detail)
		}
	}
	s.setState(Disconnected)
}

func (s *Supervisor) setState(next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()
	if prev != next {
		s.logger.Info(fmt.Sprintf("realtime: %s -> %s", prev, next))
	}
}

func (s *Supervisor) listeners(reg *[]func()) []func() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]func(){}, *reg...)
}

func (s *Supervisor) dispatch(fns []func()) {
	for _, fn := range fns {
		go fn()
	}
}

func (s *Supervisor) dispatchError(err error) {
	s.logger.Error("realtime: channel error", err)
	s.mu.RLock()
	fns := append([]func(error){}, s.onError...)
	s.mu.RUnlock()
	for _, fn := range fns {
		go fn(err)
	}
}
