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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/clockops/syncdiag/transcript"
)

// Report is the outcome of a full diagnostic pass. Every field is populated
// on every run: a failed stage leaves its part at defaults instead of
// aborting the pass.
type Report struct {
	ServiceState ServiceState
	Peers        []string
	Status       *SyncStatus
}

// Runner drives one diagnostic pass: make sure the time service runs, query
// and extract the configured peers, query and extract the sync status, and
// narrate all of it to the transcript. Stages run strictly in that order,
// single-threaded, and every stage failure is recovered locally.
type Runner struct {
	Manager ServiceManager
	Querier Querier
	Log     *transcript.Logger
}

// Run executes the whole pass and always returns a complete report
func (r *Runner) Run() *Report {
	report := &Report{Peers: []string{}, Status: &SyncStatus{}}

	state, err := Ensure(r.Manager)
	report.ServiceState = state
	switch state {
	case ServiceAlreadyRunning:
		r.Log.Log("time service is already running")
	case ServiceStarted:
		r.Log.Log("time service was not running, started it")
	case ServiceFailedToStart:
		log.Warningf("service control failed: %v", err)
		r.Log.Log(fmt.Sprintf("could not ensure time service is running: %v", err))
	}

	if raw, err := r.Querier.QueryPeers(); err != nil {
		log.Warningf("peers query failed: %v", err)
		r.Log.Log(fmt.Sprintf("peers query failed: %v", err))
	} else {
		report.Peers = ExtractPeers(raw)
		if len(report.Peers) == 0 {
			r.Log.Log("no peers configured")
		} else {
			r.Log.Log("configured peers: " + strings.Join(report.Peers, ", "))
		}
	}

	if raw, err := r.Querier.QueryStatus(); err != nil {
		log.Warningf("status query failed: %v", err)
		r.Log.Log(fmt.Sprintf("status query failed: %v", err))
	} else {
		report.Status = ExtractStatus(raw)
		warnMissing(report.Status)
	}

	r.Log.Log("time source: " + report.Status.TimeSource.Or(DefaultTimeSource))
	r.Log.Log("sync type: " + report.Status.SyncType.Or(DefaultUnspecified))
	r.Log.Log("last successful sync: " + report.Status.LastSyncTime.Or(DefaultUnspecified))
	r.Log.Log("poll interval: " + report.Status.PollInterval.Or(DefaultUnspecified))
	return report
}

// warnMissing flags fields the status output did not yield. Missing fields
// are a warning condition, never an error.
func warnMissing(s *SyncStatus) {
	checks := []struct {
		field  Field
		prefix string
	}{
		{s.TimeSource, prefixSource},
		{s.LastSyncTime, prefixLastSync},
		{s.PollInterval, prefixPoll},
		{s.SyncType, prefixMode},
	}
	for _, c := range checks {
		if !c.field.Found {
			log.Warningf("status output had no usable %q line, falling back to default", c.prefix)
		}
	}
}
