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
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// ScManager drives the Windows service control manager through sc.exe and
// net.exe, which is how the stock time service is usually poked at.
type ScManager struct {
	Service string
}

// QueryState parses the STATE line of `sc query`
func (m *ScManager) QueryState() (UnitState, error) {
	out, err := exec.Command("sc", "query", m.Service).Output()
	if err != nil {
		return UnitUnknown, errors.Wrapf(err, "querying service %s", m.Service)
	}
	if strings.Contains(string(out), "RUNNING") {
		return UnitRunning, nil
	}
	return UnitStopped, nil
}

// RequestStart starts the service via `net start`
func (m *ScManager) RequestStart() error {
	if err := exec.Command("net", "start", m.Service).Run(); err != nil {
		return errors.Wrapf(err, "starting service %s", m.Service)
	}
	return nil
}

// NewManager returns the service manager for this platform
func NewManager(cfg *Config) ServiceManager {
	return &ScManager{Service: cfg.Service}
}
