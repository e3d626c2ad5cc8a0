// Package bluez disconnects controllers through the org.bluez service on
// the system bus.
package bluez

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	busName         = "org.bluez"
	deviceInterface = "org.bluez.Device1"
	objectManager   = "org.freedesktop.DBus.ObjectManager"
)

// ErrNotFound means no connected bluez device carries the given address.
var ErrNotFound = errors.New("bluetooth device not found")

// DisconnectDevice finds the connected device with the given address
// (AA:BB:CC:DD:EE:FF) and asks bluez to disconnect it, which powers the
// controller down.
func DisconnectDevice(address string) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return fmt.Errorf("connect to system bus: %w", err)
	}
	defer conn.Close()

	path, err := findConnectedDevice(conn, address)
	if err != nil {
		return err
	}
	if call := conn.Object(busName, path).Call(deviceInterface+".Disconnect", 0); call.Err != nil {
		return fmt.Errorf("disconnect %s: %w", address, call.Err)
	}
	return nil
}

func findConnectedDevice(conn *dbus.Conn, address string) (dbus.ObjectPath, error) {
	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	err := conn.Object(busName, "/").Call(objectManager+".GetManagedObjects", 0).Store(&objects)
	if err != nil {
		return "", fmt.Errorf("enumerate bluetooth devices: %w", err)
	}
	for path, ifaces := range objects {
		props, ok := ifaces[deviceInterface]
		if !ok {
			continue
		}
		addr, _ := props["Address"].Value().(string)
		connected, _ := props["Connected"].Value().(bool)
		if connected && strings.EqualFold(addr, address) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, address)
}
