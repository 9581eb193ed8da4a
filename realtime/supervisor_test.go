package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siakad-id/siakad/core"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// fakeTransport lets a test script the event stream by hand.
type fakeTransport struct {
	events     chan Event
	connectErr error
	closed     bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{events: make(chan Event)}
}

func (tr *fakeTransport) Connect(context.Context) (<-chan Event, error) {
	if tr.connectErr != nil {
		return nil, tr.connectErr
	}
	return tr.events, nil
}

func (tr *fakeTransport) Close() error {
	if !tr.closed {
		tr.closed = true
		close(tr.events)
	}
	return nil
}

// waitFor polls until the supervisor reaches the wanted state; the observe
// loop runs on its own goroutine so transitions are not instantaneous.
func waitFor(t *testing.T, s *Supervisor, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("State() = %v, want %v", s.State(), want)
}

func TestSupervisorLifecycle(t *testing.T) {
	tr := newFakeTransport()
	s := newSupervisor(tr, nopLogger{})
	require.Equal(t, Disconnected, s.State())

	var mu sync.Mutex
	var connects, disconnects int
	var gotErr error
	s.OnConnected(func() { mu.Lock(); connects++; mu.Unlock() })
	s.OnDisconnected(func() { mu.Lock(); disconnects++; mu.Unlock() })
	s.OnError(func(err error) { mu.Lock(); gotErr = err; mu.Unlock() })

	require.NoError(t, s.Connect(context.Background()))

	tr.events <- Event{Kind: EventConnected}
	waitFor(t, s, Connected)

	tr.events <- Event{Kind: EventDisconnected}
	waitFor(t, s, Disconnected)

	tr.events <- Event{Kind: EventConnecting}
	waitFor(t, s, Connecting)

	tr.events <- Event{Kind: EventError, Detail: errors.New("4001")}
	waitFor(t, s, Errored)

	require.NoError(t, s.Close())
	waitFor(t, s, Disconnected)

	// listeners are notified asynchronously
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		done := connects == 1 && disconnects == 1 && gotErr != nil
		mu.Unlock()
		if done {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, connects)
	assert.Equal(t, 1, disconnects)
	require.Error(t, gotErr)
	assert.Equal(t, "4001", gotErr.Error())
}

func TestSupervisorConnectFailure(t *testing.T) {
	tr := newFakeTransport()
	tr.connectErr = errors.New("dial refused")
	s := newSupervisor(tr, nopLogger{})

	var mu sync.Mutex
	var gotErr error
	s.OnError(func(err error) { mu.Lock(); gotErr = err; mu.Unlock() })

	if err := s.Connect(context.Background()); err == nil {
		t.Fatal("Connect() error = nil, want dial failure")
	}
	assert.Equal(t, Errored, s.State())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		done := gotErr != nil
		mu.Unlock()
		if done {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("error listener was never notified")
}

func TestSupervisorCloseBeforeConnect(t *testing.T) {
	s := newSupervisor(newFakeTransport(), nopLogger{})
	// must not block waiting for an observe loop that never started
	require.NoError(t, s.Close())
}

func TestNewSupervisorIsSingleton(t *testing.T) {
	s1 := NewSupervisor(newFakeTransport(), nopLogger{})
	s2 := NewSupervisor(newFakeTransport(), nopLogger{})
	assert.Same(t, s1, s2)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		conf     core.RealtimeConfig
		wantPort int
		wantErr  error
	}{
		{name: "missing host", conf: core.RealtimeConfig{Key: "k"}, wantErr: ErrMissingHost},
		{name: "missing key", conf: core.RealtimeConfig{Host: "h"}, wantErr: ErrMissingKey},
		{name: "port defaulted", conf: core.RealtimeConfig{Host: "h", Key: "k"}, wantPort: 8080},
		{name: "port kept", conf: core.RealtimeConfig{Host: "h", Key: "k", Port: 6001}, wantPort: 6001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := ValidateConfig(tt.conf)
			if err != tt.wantErr {
				t.Fatalf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && conf.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", conf.Port, tt.wantPort)
			}
		})
	}
}
