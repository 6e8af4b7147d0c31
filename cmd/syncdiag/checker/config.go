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
	"os"
	"runtime"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config controls where the transcript goes and how the host is queried
type Config struct {
	LogPath   string   `yaml:"logpath"`
	Service   string   `yaml:"service"`
	StatusCmd []string `yaml:"statuscmd"`
	PeersCmd  []string `yaml:"peerscmd"`
}

// DefaultConfig returns per-platform defaults. Only Windows ships a query
// tool with the output shape we extract, so the query commands default to it
// there and stay unset elsewhere until configured.
func DefaultConfig() *Config {
	cfg := &Config{}
	switch runtime.GOOS {
	case "windows":
		cfg.LogPath = `C:\Windows\Temp\syncdiag.log`
		cfg.Service = "w32time"
		cfg.StatusCmd = []string{"w32tm", "/query", "/status"}
		cfg.PeersCmd = []string{"w32tm", "/query", "/peers"}
	default:
		cfg.LogPath = "/var/log/syncdiag.log"
		cfg.Service = "chronyd.service"
	}
	return cfg
}

// ReadConfig loads the config from path on top of the platform defaults.
// Empty path or missing file just means defaults.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
