package platform

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// ErrAlreadyRunning indicates another instance already owns the
// service identity.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds exclusive ownership of a well-known bus name.
type InstanceGuard struct {
	conn *dbus.Conn
	name string
}

// AcquireSingleInstance attempts to claim sole ownership of busName on
// conn. Two daemons must never race over the same conceptual timer, so
// the claim never queues behind an existing owner.
func AcquireSingleInstance(conn *dbus.Conn, busName string) (*InstanceGuard, error) {
	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return nil, fmt.Errorf("request bus name %s: %w", busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{conn: conn, name: busName}, nil
}

// Release gives up the bus name.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.conn == nil {
		return nil
	}
	_, err := guard.conn.ReleaseName(guard.name)
	return err
}

// Name returns the owned bus name.
func (guard *InstanceGuard) Name() string {
	if guard == nil {
		return ""
	}
	return guard.name
}
