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

/*
Package transcript writes the human-readable record of a diagnostic run:
every line is mirrored to the console and appended to a plain-text log file,
prefixed with the wall clock time of the call. The log file is a transcript
for humans, not a structured log.
*/
package transcript

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/host"
)

// TimeFormat is the timestamp prefix of every transcript line
const TimeFormat = "2006-01-02 15:04:05"

// RunContext carries the identity of a single diagnostic run. It is built
// once at startup and read-only afterwards.
type RunContext struct {
	Hostname           string
	ExecutionTimestamp string
	LogPath            string
}

// NewRunContext builds the context for this run, collecting host identity
// from the OS.
func NewRunContext(logPath string) *RunContext {
	hostname := "unknown"
	if info, err := host.Info(); err == nil {
		hostname = info.Hostname
	} else if h, herr := os.Hostname(); herr == nil {
		hostname = h
	}
	return &RunContext{
		Hostname:           hostname,
		ExecutionTimestamp: time.Now().Format(TimeFormat),
		LogPath:            logPath,
	}
}

// Logger mirrors transcript lines to the console and appends them to the
// run's log file. A broken log file never fails the run: after one retry the
// logger emits a single console notice and degrades to console-only output
// for the rest of the run. Lines land in the file in call order, there is a
// single writer and the file is opened for append per write.
type Logger struct {
	Console io.Writer

	ctx      *RunContext
	degraded bool
	now      func() time.Time
}

// NewLogger returns a Logger writing to stdout and ctx.LogPath
func NewLogger(ctx *RunContext) *Logger {
	return &Logger{Console: os.Stdout, ctx: ctx, now: time.Now}
}

// Log writes one transcript line, stamped with the current time. It never
// returns an error.
func (l *Logger) Log(message string) {
	line := fmt.Sprintf("%s - %s", l.now().Format(TimeFormat), message)
	fmt.Fprintln(l.Console, line)
	if l.degraded || l.ctx.LogPath == "" {
		return
	}
	if err := l.append(line); err != nil {
		// one retry, then console-only for the rest of the run
		if err = l.append(line); err != nil {
			l.degraded = true
			fmt.Fprintf(l.Console, "log sink unavailable, continuing with console output only: %v\n", err)
		}
	}
}

func (l *Logger) append(line string) error {
	f, err := os.OpenFile(l.ctx.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening transcript log")
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return errors.Wrap(err, "appending to transcript log")
	}
	return nil
}
