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
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clockops/syncdiag/cmd/syncdiag/checker"
)

func init() {
	RootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query sync status and print the extracted record",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}
		q := &checker.CmdQuerier{StatusCmd: cfg.StatusCmd, PeersCmd: cfg.PeersCmd}
		raw, err := q.QueryStatus()
		if err != nil {
			log.Fatal(err)
		}
		s := checker.ExtractStatus(raw)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"field", "value"})
		table.Append([]string{"Time source", s.TimeSource.Or(checker.DefaultTimeSource)})
		table.Append([]string{"Sync type", s.SyncType.Or(checker.DefaultUnspecified)})
		table.Append([]string{"Last successful sync", s.LastSyncTime.Or(checker.DefaultUnspecified)})
		table.Append([]string{"Poll interval", s.PollInterval.Or(checker.DefaultUnspecified)})
		table.Render()
	},
}
