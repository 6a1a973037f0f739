package service

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// Well-known service identity on the session bus.
const (
	BusName       = "com.livespiff.LiveSpiff"
	ObjectPath    = dbus.ObjectPath("/com/livespiff/LiveSpiff")
	InterfaceName = "com.livespiff.LiveSpiff.Control"
)

var introXML = `<node>
	<interface name="` + InterfaceName + `">
		<method name="StartOrSplit"/>
		<method name="TogglePause"/>
		<method name="Reset"/>
		<method name="ElapsedMs">
			<arg type="x" name="ms" direction="out"/>
		</method>
		<method name="State">
			<arg type="s" name="state" direction="out"/>
		</method>
		<method name="CurrentSplit">
			<arg type="i" name="index" direction="out"/>
		</method>
		<method name="SplitCount">
			<arg type="i" name="count" direction="out"/>
		</method>
		<method name="LoadRun">
			<arg type="s" name="path" direction="in"/>
			<arg type="b" name="ok" direction="out"/>
			<arg type="s" name="message" direction="out"/>
		</method>
		<method name="SaveRun">
			<arg type="s" name="path" direction="in"/>
			<arg type="b" name="ok" direction="out"/>
			<arg type="s" name="message" direction="out"/>
		</method>
		<method name="GetRunJson">
			<arg type="s" name="json" direction="out"/>
		</method>
	</interface>` + introspect.IntrospectDataString + `</node>`

// controlExport adapts Service to the D-Bus method-call shape. godbus
// answers calls to names missing from this set with the standard
// UnknownMethod error rather than crashing the daemon.
type controlExport struct {
	service *Service
}

func (export controlExport) StartOrSplit() *dbus.Error {
	export.service.StartOrSplit()
	return nil
}

func (export controlExport) TogglePause() *dbus.Error {
	export.service.TogglePause()
	return nil
}

func (export controlExport) Reset() *dbus.Error {
	export.service.Reset()
	return nil
}

func (export controlExport) ElapsedMs() (int64, *dbus.Error) {
	return export.service.ElapsedMs(), nil
}

func (export controlExport) State() (string, *dbus.Error) {
	return export.service.State(), nil
}

func (export controlExport) CurrentSplit() (int32, *dbus.Error) {
	return export.service.CurrentSplit(), nil
}

func (export controlExport) SplitCount() (int32, *dbus.Error) {
	return export.service.SplitCount(), nil
}

func (export controlExport) LoadRun(path string) (bool, string, *dbus.Error) {
	ok, message := export.service.LoadRun(path)
	return ok, message, nil
}

func (export controlExport) SaveRun(path string) (bool, string, *dbus.Error) {
	ok, message := export.service.SaveRun(path)
	return ok, message, nil
}

func (export controlExport) GetRunJson() (string, *dbus.Error) {
	return export.service.RunJSON(), nil
}

// Export registers the control interface and its introspection data on
// conn. The caller must already hold the bus name: ownership is the
// signal that the daemon may accept calls.
func (service *Service) Export(conn *dbus.Conn) error {
	export := controlExport{service: service}
	if err := conn.Export(export, ObjectPath, InterfaceName); err != nil {
		return fmt.Errorf("export control interface: %w", err)
	}
	if err := conn.Export(introspect.Introspectable(introXML), ObjectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("export introspection: %w", err)
	}
	return nil
}
