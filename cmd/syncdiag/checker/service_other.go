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

//go:build !linux && !windows

package checker

import "github.com/pkg/errors"

// unsupportedManager stands in on platforms where we cannot drive the service
// manager. Ensure reports ServiceFailedToStart with this error attached and
// the run carries on.
type unsupportedManager struct{}

func (unsupportedManager) QueryState() (UnitState, error) {
	return UnitUnknown, errors.New("service control is not supported on this platform")
}

func (unsupportedManager) RequestStart() error {
	return errors.New("service control is not supported on this platform")
}

// NewManager returns the service manager for this platform
func NewManager(_ *Config) ServiceManager {
	return unsupportedManager{}
}
