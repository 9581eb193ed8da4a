package session

import (
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
)

// DeviceID returns this installation's opaque identifier, generating and
// persisting it on first use. Persistence failures fall back to an
// ephemeral id; a fresh one is then generated next run.
func (s *Store) DeviceID() string {
	if id, err := s.keyring.Get(KeyDeviceID); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	if err := s.keyring.Set(KeyDeviceID, id); err != nil {
		s.logger.Warn("session: persisting device id", err)
	}
	return id
}

// DeviceName composes the per-device token name sent with login requests.
func (s *Store) DeviceName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	if len(host) > 50 {
		host = host[:50]
	}
	return fmt.Sprintf("cli_%s_%s_%s", s.DeviceID(), runtime.GOOS, host)
}
