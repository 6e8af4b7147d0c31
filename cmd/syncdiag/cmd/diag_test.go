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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clockops/syncdiag/cmd/syncdiag/checker"
)

func fullReport() *checker.Report {
	return &checker.Report{
		ServiceState: checker.ServiceAlreadyRunning,
		Peers:        []string{"10.0.0.1", "10.0.0.2"},
		Status: checker.ExtractStatus(
			"Source: time.windows.com\nMode: NTP\nPoll Interval: 6\nLast Successful Sync Time: 2024-01-01 00:00:00\n",
		),
	}
}

func TestCheckService(t *testing.T) {
	r := fullReport()
	s, _ := checkService(r)
	require.Equal(t, OK, s)

	r.ServiceState = checker.ServiceStarted
	s, _ = checkService(r)
	require.Equal(t, WARN, s)

	r.ServiceState = checker.ServiceFailedToStart
	s, _ = checkService(r)
	require.Equal(t, FAIL, s)
}

func TestCheckSourceAndMode(t *testing.T) {
	r := fullReport()
	s, msg := checkSource(r)
	require.Equal(t, OK, s)
	require.Contains(t, msg, "time.windows.com")
	s, _ = checkMode(r)
	require.Equal(t, OK, s)

	r.Status = checker.ExtractStatus("")
	s, _ = checkSource(r)
	require.Equal(t, WARN, s)
	s, _ = checkMode(r)
	require.Equal(t, WARN, s)
}

func TestCheckPeers(t *testing.T) {
	r := fullReport()
	s, _ := checkPeers(r)
	require.Equal(t, OK, s)

	r.Peers = []string{}
	s, _ = checkPeers(r)
	require.Equal(t, WARN, s)
}

func TestCheckPollInterval(t *testing.T) {
	r := fullReport()
	s, _ := checkPollInterval(r)
	require.Equal(t, OK, s)

	r.Status = checker.ExtractStatus("Poll Interval: 12\n")
	s, _ = checkPollInterval(r)
	require.Equal(t, WARN, s)

	r.Status = checker.ExtractStatus("Poll Interval: 17\n")
	s, _ = checkPollInterval(r)
	require.Equal(t, FAIL, s)

	r.Status = checker.ExtractStatus("")
	s, _ = checkPollInterval(r)
	require.Equal(t, WARN, s)
}

func TestRunAllDiagnosers(t *testing.T) {
	require.Equal(t, 0, runAllDiagnosers(fullReport()))

	empty := &checker.Report{
		ServiceState: checker.ServiceFailedToStart,
		Peers:        []string{},
		Status:       checker.ExtractStatus(""),
	}
	require.Equal(t, len(diagnosers), runAllDiagnosers(empty))
}
