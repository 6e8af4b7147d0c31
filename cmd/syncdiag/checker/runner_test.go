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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clockops/syncdiag/transcript"
)

type fakeQuerier struct {
	statusOut string
	statusErr error
	peersOut  string
	peersErr  error
}

func (q *fakeQuerier) QueryStatus() (string, error) {
	return q.statusOut, q.statusErr
}

func (q *fakeQuerier) QueryPeers() (string, error) {
	return q.peersOut, q.peersErr
}

func newTestLogger(t *testing.T) (*transcript.Logger, *bytes.Buffer, string) {
	logPath := filepath.Join(t.TempDir(), "syncdiag.log")
	logger := transcript.NewLogger(&transcript.RunContext{
		Hostname:           "test-host",
		ExecutionTimestamp: "2024-01-01 00:00:00",
		LogPath:            logPath,
	})
	console := &bytes.Buffer{}
	logger.Console = console
	return logger, console, logPath
}

func TestRunnerHappyPath(t *testing.T) {
	logger, console, logPath := newTestLogger(t)
	runner := &Runner{
		Manager: &fakeManager{state: UnitRunning},
		Querier: &fakeQuerier{
			statusOut: "Source: time.windows.com\nMode: NTP\nPoll Interval: 6\nLast Successful Sync Time: 2024-01-01 00:00:00\n",
			peersOut:  "Peer: 10.0.0.1\nPeer: 10.0.0.2\n",
		},
		Log: logger,
	}
	report := runner.Run()

	require.Equal(t, ServiceAlreadyRunning, report.ServiceState)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, report.Peers)
	require.Equal(t, "time.windows.com", report.Status.TimeSource.Value)
	require.Equal(t, "NTP", report.Status.SyncType.Value)
	require.Equal(t, "64 seconds", report.Status.PollInterval.Value)
	require.Equal(t, "2024-01-01 00:00:00", report.Status.LastSyncTime.Value)

	require.Contains(t, console.String(), "configured peers: 10.0.0.1, 10.0.0.2")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "configured peers: 10.0.0.1, 10.0.0.2")
	require.Contains(t, string(data), "time source: time.windows.com")
}

func TestRunnerQueryFailuresKeepDefaults(t *testing.T) {
	logger, console, _ := newTestLogger(t)
	runner := &Runner{
		Manager: &fakeManager{state: UnitRunning},
		Querier: &fakeQuerier{
			statusErr: fmt.Errorf("command not found"),
			peersErr:  fmt.Errorf("command not found"),
		},
		Log: logger,
	}
	report := runner.Run()

	require.Empty(t, report.Peers)
	require.False(t, report.Status.TimeSource.Found)
	require.Contains(t, console.String(), "status query failed")
	require.Contains(t, console.String(), "peers query failed")
	require.Contains(t, console.String(), "time source: Unknown")
	require.Contains(t, console.String(), "sync type: Unspecified")
	require.Contains(t, console.String(), "last successful sync: Unspecified")
	require.Contains(t, console.String(), "poll interval: Unspecified")
}

func TestRunnerContinuesWhenServiceFails(t *testing.T) {
	logger, console, _ := newTestLogger(t)
	runner := &Runner{
		Manager: &fakeManager{queryErr: fmt.Errorf("no service manager")},
		Querier: &fakeQuerier{
			statusOut: "Mode: NTP\n",
			peersOut:  "",
		},
		Log: logger,
	}
	report := runner.Run()

	// reporting still happens even though the service could not be ensured
	require.Equal(t, ServiceFailedToStart, report.ServiceState)
	require.Equal(t, "NTP", report.Status.SyncType.Value)
	require.Contains(t, console.String(), "could not ensure time service is running")
	require.Contains(t, console.String(), "no peers configured")
}

func TestRunnerNoPeersIsInformational(t *testing.T) {
	logger, console, _ := newTestLogger(t)
	runner := &Runner{
		Manager: &fakeManager{state: UnitRunning},
		Querier: &fakeQuerier{peersOut: "nothing to see\n", statusOut: ""},
		Log:     logger,
	}
	report := runner.Run()
	require.NotNil(t, report.Peers)
	require.Empty(t, report.Peers)
	require.Contains(t, console.String(), "no peers configured")
}
