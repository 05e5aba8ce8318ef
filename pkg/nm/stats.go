/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nm

import (
	"context"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/carverauto/nmstatus/pkg/report"
)

// StatsCollector returns kernel counters per interface; gnet.IOCountersWithContext
// satisfies it.
type StatsCollector func(ctx context.Context, pernic bool) ([]gnet.IOCountersStat, error)

// interfaceStats is a read-only snapshot shared by all device branches of a pass.
type interfaceStats map[string]gnet.IOCountersStat

func snapshotStats(ctx context.Context, collect StatsCollector) (interfaceStats, error) {
	counters, err := collect(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make(interfaceStats, len(counters))
	for _, c := range counters {
		out[c.Name] = c
	}

	return out, nil
}

// lookup returns the counters for name, or Absent when unknown.
func (s interfaceStats) lookup(name string) report.Value {
	c, ok := s[name]
	if !ok {
		return report.Absent()
	}

	return report.FromRecord(report.NewRecord(
		report.Field{Key: "bytes_sent", Value: counter(c.BytesSent)},
		report.Field{Key: "bytes_recv", Value: counter(c.BytesRecv)},
		report.Field{Key: "packets_sent", Value: counter(c.PacketsSent)},
		report.Field{Key: "packets_recv", Value: counter(c.PacketsRecv)},
		report.Field{Key: "errin", Value: counter(c.Errin)},
		report.Field{Key: "errout", Value: counter(c.Errout)},
		report.Field{Key: "dropin", Value: counter(c.Dropin)},
		report.Field{Key: "dropout", Value: counter(c.Dropout)},
	))
}

// counter clamps values that do not fit a signed 64-bit report integer.
func counter(u uint64) report.Value {
	const maxInt64 = 1<<63 - 1
	if u > maxInt64 {
		return report.Int(maxInt64)
	}

	return report.Int(int64(u))
}
