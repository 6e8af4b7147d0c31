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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clockops/syncdiag/cmd/syncdiag/checker"
)

// RootCmd is a main entry point. It's exported so syncdiag could be easily extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "syncdiag",
	Short: "One-shot diagnostic for the host time-sync subsystem",
}

var verbose bool
var configPath string
var logFileFlag string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	RootCmd.PersistentFlags().StringVarP(&logFileFlag, "log-file", "l", "", "override transcript log file location")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*checker.Config, error) {
	cfg, err := checker.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if logFileFlag != "" {
		cfg.LogPath = logFileFlag
	}
	return cfg, nil
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
