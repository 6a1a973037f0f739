// Package client wraps the daemon's D-Bus surface for front ends.
package client

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"livespiff/internal/service"
)

// Client is a session-bus handle to a running livespiffd.
type Client struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// Connect opens a session-bus connection to the daemon.
func Connect() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &Client{
		conn: conn,
		obj:  conn.Object(service.BusName, service.ObjectPath),
	}, nil
}

// Close releases the bus connection.
func (client *Client) Close() error {
	return client.conn.Close()
}

func (client *Client) call(method string, args ...interface{}) *dbus.Call {
	return client.obj.Call(service.InterfaceName+"."+method, 0, args...)
}

// StartOrSplit starts the timer or advances one checkpoint.
func (client *Client) StartOrSplit() error {
	return client.call("StartOrSplit").Err
}

// TogglePause pauses or resumes the timer.
func (client *Client) TogglePause() error {
	return client.call("TogglePause").Err
}

// Reset returns the timer to Idle.
func (client *Client) Reset() error {
	return client.call("Reset").Err
}

// ElapsedMs reports elapsed time in milliseconds.
func (client *Client) ElapsedMs() (int64, error) {
	var ms int64
	err := client.call("ElapsedMs").Store(&ms)
	return ms, err
}

// State reports the timer state name.
func (client *Client) State() (string, error) {
	var state string
	err := client.call("State").Store(&state)
	return state, err
}

// CurrentSplit reports the zero-based index of the next checkpoint.
func (client *Client) CurrentSplit() (int32, error) {
	var index int32
	err := client.call("CurrentSplit").Store(&index)
	return index, err
}

// SplitCount reports the checkpoint count of the active run.
func (client *Client) SplitCount() (int32, error) {
	var count int32
	err := client.call("SplitCount").Store(&count)
	return count, err
}

// LoadRun asks the daemon to load the run document at path.
func (client *Client) LoadRun(path string) (bool, string, error) {
	var ok bool
	var message string
	err := client.call("LoadRun", path).Store(&ok, &message)
	return ok, message, err
}

// SaveRun asks the daemon to save the active run to path.
func (client *Client) SaveRun(path string) (bool, string, error) {
	var ok bool
	var message string
	err := client.call("SaveRun", path).Store(&ok, &message)
	return ok, message, err
}

// RunJSON fetches the active run as pretty-printed JSON.
func (client *Client) RunJSON() (string, error) {
	var text string
	err := client.call("GetRunJson").Store(&text)
	return text, err
}
