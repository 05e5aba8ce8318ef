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

// Package nm collects NetworkManager state over D-Bus into a report tree.
package nm

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gnet "github.com/shirou/gopsutil/v3/net"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/nmstatus/pkg/logger"
	"github.com/carverauto/nmstatus/pkg/report"
)

type passState string

const (
	stateConnecting     passState = "connecting"
	stateManagerFetch   passState = "manager_fetch"
	stateChildExpansion passState = "child_expansion"
	stateFolding        passState = "folding"
	stateDone           passState = "done"
	stateFailed         passState = "failed"
)

// Collector builds status reports. Each call runs one independent pass with
// its own bus session; nothing is cached between passes.
type Collector struct {
	log    logger.Logger
	dialer Dialer
	stats  StatsCollector
}

// Option configures a Collector.
type Option func(*Collector)

// WithStatsCollector replaces the interface counter source; nil disables the
// per-device "stats" record.
func WithStatsCollector(fn StatsCollector) Option {
	return func(c *Collector) {
		c.stats = fn
	}
}

func NewCollector(log logger.Logger, dialer Dialer, opts ...Option) *Collector {
	c := &Collector{
		log:    log,
		dialer: dialer,
		stats:  gnet.IOCountersWithContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewCollectorFromConfig wires the D-Bus dialer and stats source from cfg.
func NewCollectorFromConfig(log logger.Logger, cfg *Config) (*Collector, error) {
	callTimeout, err := cfg.Normalize()
	if err != nil {
		return nil, fmt.Errorf("invalid call_timeout: %w", err)
	}

	var opts []Option
	if !*cfg.InterfaceStats {
		opts = append(opts, WithStatsCollector(nil))
	}

	dialer := &SystemBusDialer{Address: cfg.BusAddress, CallTimeout: callTimeout}

	return NewCollector(log, dialer, opts...), nil
}

// pass holds the resources of one collection; it is discarded when the pass
// returns.
type pass struct {
	log   zerolog.Logger
	bus   Bus
	stats interfaceStats
	start time.Time
}

func (c *Collector) begin(ctx context.Context) (*pass, error) {
	id := uuid.New().String()
	log := c.log.With().Str("pass_id", id).Logger()
	p := &pass{log: log, start: time.Now()}

	p.transition(stateConnecting)

	bus, err := c.dialer.Dial(ctx)
	if err != nil {
		p.transition(stateFailed)
		log.Error().Err(err).Msg("Failed to connect to system bus")

		return nil, fmt.Errorf("%w: %w", ErrBusUnavailable, err)
	}

	p.bus = bus

	return p, nil
}

func (p *pass) end() {
	if err := p.bus.Close(); err != nil {
		p.log.Debug().Err(err).Msg("Failed to close bus connection")
	}
}

func (p *pass) transition(s passState) {
	p.log.Debug().Str("state", string(s)).Dur("elapsed", time.Since(p.start)).Msg("Collection pass state")
}

// Status runs a full pass. The only error is ErrBusUnavailable; every other
// failure shows up as Absent inside the returned record.
func (c *Collector) Status(ctx context.Context) (report.Value, error) {
	p, err := c.begin(ctx)
	if err != nil {
		return report.Absent(), err
	}
	defer p.end()

	// Once connected, every issued read runs to completion or to its own
	// call_timeout; caller cancellation does not cut the pass short.
	ctx = context.WithoutCancel(ctx)

	if c.stats != nil {
		p.stats, err = snapshotStats(ctx, c.stats)
		if err != nil {
			p.log.Warn().Err(err).Msg("Interface statistics unavailable")
		}
	}

	root := p.status(ctx, c.stats != nil)

	p.transition(stateDone)

	return report.FromRecord(root), nil
}

// Version reads only the manager version.
func (c *Collector) Version(ctx context.Context) (string, error) {
	p, err := c.begin(ctx)
	if err != nil {
		return "", err
	}
	defer p.end()

	ctx = context.WithoutCancel(ctx)

	mgr, err := NewManager(p.bus)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrVersionUnavailable, err)
	}

	v, ok := Fetch(ctx, mgr.Version).Get()
	if !ok {
		return "", ErrVersionUnavailable
	}

	p.transition(stateDone)

	return v, nil
}

func (p *pass) status(ctx context.Context, includeStats bool) *report.Record {
	p.transition(stateManagerFetch)

	mgr, err := NewManager(p.bus)
	if err != nil {
		p.log.Warn().Err(err).Msg("Manager proxy unavailable")

		root := absentRecord(managerFields)
		root.Set("active_connections", report.Absent())
		root.Set("all_devices", report.Absent())
		root.Set("devices", report.Absent())

		return root
	}

	var (
		g                           errgroup.Group
		root                        *report.Record
		active, allDevices, devices report.Value
	)

	expandDevice := p.deviceExpander(includeStats)

	g.Go(func() error {
		root = foldFields(ctx, p.log, mgr, managerFields)
		return nil
	})
	g.Go(func() error {
		active = p.expandList(ctx, "active_connections", mgr.ActiveConnections, p.expandActiveConnection)
		return nil
	})
	g.Go(func() error {
		allDevices = p.expandList(ctx, "all_devices", mgr.AllDevices, expandDevice)
		return nil
	})
	g.Go(func() error {
		devices = p.expandList(ctx, "devices", mgr.Devices, expandDevice)
		return nil
	})

	_ = g.Wait()

	p.transition(stateFolding)

	root.Set("active_connections", active)
	root.Set("all_devices", allDevices)
	root.Set("devices", devices)

	return root
}

// expander turns one reference into a report value; false drops the element.
type expander func(ctx context.Context, path dbus.ObjectPath) (report.Value, bool)

// expandList fetches a reference list and expands each entry concurrently.
// A failed list fetch yields Absent; results keep the reference order.
func (p *pass) expandList(ctx context.Context, name string, refs Accessor[[]dbus.ObjectPath], expand expander) report.Value {
	o := Fetch(ctx, refs)

	paths, ok := o.Get()
	if !ok {
		logDegraded(p.log, name, o)
		return report.Absent()
	}

	p.log.Debug().
		Str("state", string(stateChildExpansion)).
		Str("list", name).
		Int("references", len(paths)).
		Msg("Expanding references")

	results := make([]report.Value, len(paths))
	kept := make([]bool, len(paths))

	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i], kept[i] = expand(ctx, path)
			return nil
		})
	}

	_ = g.Wait()

	out := make([]report.Value, 0, len(paths))

	for i := range paths {
		if kept[i] {
			out = append(out, results[i])
		}
	}

	return report.List(out...)
}

func (p *pass) expandActiveConnection(ctx context.Context, path dbus.ObjectPath) (report.Value, bool) {
	ac, err := NewActiveConnection(p.bus, path)
	if err != nil {
		p.log.Debug().Err(err).Str("path", string(path)).Msg("Dropping active connection")
		return report.Absent(), false
	}

	log := p.log.With().Str("active_connection", string(path)).Logger()

	var (
		g   errgroup.Group
		rec *report.Record
		vpn report.Value
	)

	g.Go(func() error {
		rec = foldFields(ctx, log, ac, activeConnectionFields)
		return nil
	})
	g.Go(func() error {
		vpn = p.expandVPN(ctx, log, ac)
		return nil
	})

	_ = g.Wait()

	rec.Set("vpn", vpn)

	return report.FromRecord(rec), true
}

// expandVPN follows the active connection to its VPN view only when the
// connection says it is a VPN.
func (p *pass) expandVPN(ctx context.Context, log zerolog.Logger, ac *ActiveConnection) report.Value {
	isVPN, ok := Optional(ctx, ac.Vpn, report.Bool).AsBool()
	if !ok || !isVPN {
		return report.Absent()
	}

	conn, err := NewVPNConnection(p.bus, ac.path)
	if err != nil {
		log.Debug().Err(err).Msg("VPN connection proxy unavailable")
		return report.Absent()
	}

	return report.FromRecord(foldFields(ctx, log, conn, vpnConnectionFields))
}

func (p *pass) deviceExpander(includeStats bool) expander {
	return func(ctx context.Context, path dbus.ObjectPath) (report.Value, bool) {
		dev, err := NewDevice(p.bus, path)
		if err != nil {
			p.log.Debug().Err(err).Str("path", string(path)).Msg("Dropping device")
			return report.Absent(), false
		}

		log := p.log.With().Str("device", string(path)).Logger()
		rec := foldFields(ctx, log, dev, deviceFields)

		if includeStats {
			rec.Set("stats", p.interfaceStats(rec))
		}

		return report.FromRecord(rec), true
	}
}

func (p *pass) interfaceStats(device *report.Record) report.Value {
	if p.stats == nil {
		return report.Absent()
	}

	name, ok := report.FromRecord(device).Path("interface", "name").AsString()
	if !ok {
		return report.Absent()
	}

	return p.stats.lookup(name)
}
