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
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clockops/syncdiag/cmd/syncdiag/checker"
)

func init() {
	RootCmd.AddCommand(peersCmd)
}

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Query configured peers and print them in order of appearance",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}
		q := &checker.CmdQuerier{StatusCmd: cfg.StatusCmd, PeersCmd: cfg.PeersCmd}
		raw, err := q.QueryPeers()
		if err != nil {
			log.Fatal(err)
		}
		peers := checker.ExtractPeers(raw)
		if len(peers) == 0 {
			fmt.Println("no peers configured")
			return
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"#", "peer"})
		for i, peer := range peers {
			table.Append([]string{fmt.Sprintf("%d", i+1), peer})
		}
		table.Render()
	},
}
