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
	"strconv"
	"strings"
)

// default renderings for fields we could not extract
const (
	DefaultTimeSource  = "Unknown"
	DefaultUnspecified = "Unspecified"
)

// line prefixes of the status query output
const (
	prefixSource   = "Source:"
	prefixLastSync = "Last Successful Sync Time:"
	prefixPoll     = "Poll Interval:"
	prefixMode     = "Mode:"
)

// Field is a single extracted value. Found tells whether the value actually
// came from the source text, so "parsed the literal string Unknown" and
// "nothing to parse" stay distinguishable even though both render the same.
type Field struct {
	Value string
	Found bool
}

// Or returns the extracted value, or fallback when nothing was extracted.
func (f Field) Or(fallback string) string {
	if f.Found {
		return f.Value
	}
	return fallback
}

// SyncStatus is the typed record extracted from the raw status query output.
// Fields are independent: any subset may be missing, and a missing field
// renders as its documented default.
type SyncStatus struct {
	TimeSource   Field
	LastSyncTime Field
	PollInterval Field
	SyncType     Field
}

// PollSeconds returns the derived poll interval in seconds, when known.
func (s *SyncStatus) PollSeconds() (uint64, bool) {
	if !s.PollInterval.Found {
		return 0, false
	}
	var n uint64
	if _, err := fmt.Sscanf(s.PollInterval.Value, "%d seconds", &n); err != nil {
		return 0, false
	}
	return n, true
}

// pollSeconds converts the poll interval value reported by the time service
// into a rendered number of seconds. The reported value is an exponent, not a
// direct second count: a value of n means 2^n seconds. This mirrors the
// current output format of the queried tool; if that format ever switches to
// direct seconds this derivation goes silently wrong, so confirm the tool's
// semantics before changing it.
func pollSeconds(value string) (string, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 62 {
		return "", false
	}
	return fmt.Sprintf("%d seconds", uint64(1)<<uint(n)), true
}

// ExtractStatus extracts a SyncStatus from the raw text output of the status
// query. For each known prefix only the first line starting with it counts,
// the prefix has to be at the very start of the line, and the value is what
// remains after stripping the prefix and surrounding whitespace. Missing or
// malformed fields keep their defaults; extraction itself never fails.
func ExtractStatus(raw string) *SyncStatus {
	status := &SyncStatus{}
	var sourceSeen, lastSyncSeen, pollSeen, modeSeen bool
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case !sourceSeen && strings.HasPrefix(line, prefixSource):
			sourceSeen = true
			status.TimeSource = Field{Value: strings.TrimSpace(strings.TrimPrefix(line, prefixSource)), Found: true}
		case !lastSyncSeen && strings.HasPrefix(line, prefixLastSync):
			lastSyncSeen = true
			status.LastSyncTime = Field{Value: strings.TrimSpace(strings.TrimPrefix(line, prefixLastSync)), Found: true}
		case !pollSeen && strings.HasPrefix(line, prefixPoll):
			pollSeen = true
			if rendered, ok := pollSeconds(strings.TrimSpace(strings.TrimPrefix(line, prefixPoll))); ok {
				status.PollInterval = Field{Value: rendered, Found: true}
			}
		case !modeSeen && strings.HasPrefix(line, prefixMode):
			modeSeen = true
			status.SyncType = Field{Value: strings.TrimSpace(strings.TrimPrefix(line, prefixMode)), Found: true}
		}
	}
	return status
}
