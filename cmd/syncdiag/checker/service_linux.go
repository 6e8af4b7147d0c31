/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package checker

import (
	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/pkg/errors"
)

// SystemdManager controls the time-sync unit over the systemd D-Bus API
type SystemdManager struct {
	Unit string
}

// QueryState maps the unit's ActiveState onto UnitState
func (m *SystemdManager) QueryState() (UnitState, error) {
	conn, err := dbus.NewSystemConnection()
	if err != nil {
		return UnitUnknown, errors.Wrap(err, "connecting to systemd")
	}
	defer conn.Close()
	prop, err := conn.GetUnitProperty(m.Unit, "ActiveState")
	if err != nil {
		return UnitUnknown, errors.Wrapf(err, "querying ActiveState of %s", m.Unit)
	}
	state, ok := prop.Value.Value().(string)
	if !ok {
		return UnitUnknown, errors.Errorf("unexpected ActiveState value %v for %s", prop.Value, m.Unit)
	}
	switch state {
	case "active", "activating", "reloading":
		return UnitRunning, nil
	default:
		return UnitStopped, nil
	}
}

// RequestStart asks systemd to start the unit and waits for the job result
func (m *SystemdManager) RequestStart() error {
	conn, err := dbus.NewSystemConnection()
	if err != nil {
		return errors.Wrap(err, "connecting to systemd")
	}
	defer conn.Close()
	ch := make(chan string, 1)
	if _, err := conn.StartUnit(m.Unit, "replace", ch); err != nil {
		return errors.Wrapf(err, "starting %s", m.Unit)
	}
	if result := <-ch; result != "done" {
		return errors.Errorf("systemd job for %s finished with result %q", m.Unit, result)
	}
	return nil
}

// NewManager returns the service manager for this platform
func NewManager(cfg *Config) ServiceManager {
	return &SystemdManager{Unit: cfg.Service}
}
