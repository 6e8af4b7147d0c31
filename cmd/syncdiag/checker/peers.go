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

import "strings"

// peerMarker labels peer lines in the peers query output. Unlike the status
// prefixes it can appear anywhere in the line.
const peerMarker = "Peer:"

// ExtractPeers extracts the configured peer identifiers from the raw text
// output of the peers query, in order of appearance, duplicates preserved.
// Identifiers are opaque strings, no hostname/IP validation happens here.
// No matches means an empty list, not an error.
func ExtractPeers(raw string) []string {
	peers := []string{}
	for _, line := range strings.Split(raw, "\n") {
		idx := strings.Index(line, peerMarker)
		if idx < 0 {
			continue
		}
		peers = append(peers, strings.TrimSpace(line[idx+len(peerMarker):]))
	}
	return peers
}
