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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Querier produces the raw text output of the two diagnostic queries
type Querier interface {
	QueryStatus() (string, error)
	QueryPeers() (string, error)
}

// CmdQuerier shells out to the configured commands and captures their stdout.
// A spawn failure or non-zero exit comes back as an error with the command
// attached; the caller decides how to degrade.
type CmdQuerier struct {
	StatusCmd []string
	PeersCmd  []string
}

func (q *CmdQuerier) run(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("no command configured")
	}
	out, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		return "", errors.Wrapf(err, "running %v", argv)
	}
	log.Debugf("output of %v:\n%s", argv, out)
	return string(out), nil
}

// QueryStatus runs the sync status query
func (q *CmdQuerier) QueryStatus() (string, error) {
	return q.run(q.StatusCmd)
}

// QueryPeers runs the configured peers query
func (q *CmdQuerier) QueryPeers() (string, error) {
	return q.run(q.PeersCmd)
}
