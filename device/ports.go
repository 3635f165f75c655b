package device

import (
	"errors"
	"fmt"
	"sort"

	"go.bug.st/serial/enumerator"
)

var ErrNoUSBSerial = errors.New("no USB serial ports found")

// GetSerialPorts returns the names of USB serial ports, sorted. ErrNoUSBSerial is returned when
// the system has serial ports but none of them are USB.
func GetSerialPorts() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	return usbPortNames(ports)
}

func usbPortNames(ports []*enumerator.PortDetails) ([]string, error) {
	seen := map[string]struct{}{}
	names := []string{}
	for _, p := range ports {
		if p == nil || p.Name == "" || !p.IsUSB {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}

	if len(names) == 0 {
		return nil, ErrNoUSBSerial
	}

	sort.Strings(names)
	return names, nil
}
