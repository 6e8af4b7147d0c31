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

import "github.com/pkg/errors"

// ServiceState is the outcome of making sure the time service is running
type ServiceState int

const (
	// ServiceAlreadyRunning means the service was up before we looked
	ServiceAlreadyRunning ServiceState = iota
	// ServiceStarted means the service was down and we brought it up
	ServiceStarted
	// ServiceFailedToStart means we could neither confirm nor start it
	ServiceFailedToStart
)

var serviceStateToString = map[ServiceState]string{
	ServiceAlreadyRunning: "already running",
	ServiceStarted:        "started",
	ServiceFailedToStart:  "failed to start",
}

func (s ServiceState) String() string {
	return serviceStateToString[s]
}

// UnitState is the service state as reported by the platform service manager
type UnitState int

const (
	// UnitRunning means the service is active
	UnitRunning UnitState = iota
	// UnitStopped means the service is known but not active
	UnitStopped
	// UnitUnknown means the manager could not tell
	UnitUnknown
)

// ServiceManager abstracts the platform's service control interface
type ServiceManager interface {
	QueryState() (UnitState, error)
	RequestStart() error
}

// Ensure makes sure the host's time-sync service is running, starting it when
// needed. A failing state query is reported as ServiceFailedToStart with the
// cause attached, never treated as already running. Calling Ensure again when
// the service runs is a no-op.
func Ensure(m ServiceManager) (ServiceState, error) {
	state, err := m.QueryState()
	if err != nil {
		return ServiceFailedToStart, errors.Wrap(err, "querying time service state")
	}
	if state == UnitRunning {
		return ServiceAlreadyRunning, nil
	}
	if err := m.RequestStart(); err != nil {
		return ServiceFailedToStart, errors.Wrap(err, "starting time service")
	}
	return ServiceStarted, nil
}
