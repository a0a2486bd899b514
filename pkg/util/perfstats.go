// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records a snapshot of elapsed time and memory usage, such that the
// cost of some operation (e.g. expanding a polynomial) can be reported once it
// completes.
type PerfStats struct {
	// Time when snapshot taken
	start time.Time
	// Total bytes allocated when snapshot taken
	alloc uint64
	// Number of completed GC cycles when snapshot taken
	gcs uint32
}

// NewPerfStats takes a snapshot of the current time and memory usage.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports (at debug level) the time taken and memory allocated since this
// snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.Debugf("%s took %0.3fs allocating %s (%d GC events)", prefix, time.Since(p.start).Seconds(),
		formatBytes(m.TotalAlloc-p.alloc), m.NumGC-p.gcs)
}

func formatBytes(n uint64) string {
	const unit = 1024
	//
	switch {
	case n >= unit*unit*unit:
		return fmt.Sprintf("%0.2fGb", float64(n)/(unit*unit*unit))
	case n >= unit*unit:
		return fmt.Sprintf("%0.2fMb", float64(n)/(unit*unit))
	default:
		return fmt.Sprintf("%0.2fKb", float64(n)/unit)
	}
}
