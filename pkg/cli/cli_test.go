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

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/nmstatus/pkg/logger"
	"github.com/carverauto/nmstatus/pkg/nm"
	"github.com/carverauto/nmstatus/pkg/report"
)

var errTestSocket = errors.New("dial unix /run/dbus/system_bus_socket: no such file")

type fakeSource struct {
	status report.Value
	ver    string
	err    error
}

func (f *fakeSource) Status(context.Context) (report.Value, error) { return f.status, f.err }

func (f *fakeSource) Version(context.Context) (string, error) { return f.ver, f.err }

func sampleReport() report.Value {
	return report.FromRecord(report.NewRecord(
		report.Field{Key: "version", Value: report.String("1.42.0")},
		report.Field{Key: "active_connections", Value: report.List()},
		report.Field{Key: "all_devices", Value: report.Absent()},
	))
}

func runApp(t *testing.T, source *fakeSource, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer

	var seen *nm.Config

	app := &App{
		Stdout: &out,
		Stderr: &errOut,
		NewSource: func(_ logger.Logger, cfg *nm.Config) (StatusSource, error) {
			seen = cfg
			return source, nil
		},
	}

	missing := filepath.Join(t.TempDir(), "nmstatus.json")
	code = app.Run(context.Background(), append([]string{"-config", missing}, args...))

	if code == exitOK && seen != nil {
		assert.NotNil(t, seen.InterfaceStats)
	}

	return code, out.String(), errOut.String()
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := ParseFlags([]string{"-debug", "-format", "json", "status", "-format", "text"})
	require.NoError(t, err)
	assert.Equal(t, "status", cfg.SubCmd)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultConfigPath, cfg.ConfigFile)

	_, err = ParseFlags(nil)
	require.ErrorIs(t, err, errMissingCommand)

	_, err = ParseFlags([]string{"restart"})
	require.ErrorIs(t, err, errUnknownCommand)

	_, err = ParseFlags([]string{"version", "extra"})
	require.ErrorIs(t, err, errUnexpectedArgs)

	_, err = ParseFlags([]string{"status", "-format", "yaml"})
	require.ErrorIs(t, err, nm.ErrUnknownFormat)

	_, err = ParseFlags([]string{"-format", "yaml", "status"})
	require.ErrorIs(t, err, nm.ErrUnknownFormat)

	cfg, err = ParseFlags([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, cfg.Help)
}

func TestRunStatusJSON(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runApp(t, &fakeSource{status: sampleReport()}, "status")
	require.Equal(t, exitOK, code)

	want := "{\n" +
		"  \"version\": \"1.42.0\",\n" +
		"  \"active_connections\": [],\n" +
		"  \"all_devices\": null\n" +
		"}\n"
	assert.Equal(t, want, stdout)
}

func TestRunStatusText(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runApp(t, &fakeSource{status: sampleReport()}, "status", "-format", "text")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "version: 1.42.0\nactive_connections: []\nall_devices: n/a\n", stdout)
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runApp(t, &fakeSource{ver: "1.42.0"}, "version")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1.42.0\n", stdout)
}

func TestRunBusUnavailable(t *testing.T) {
	t.Parallel()

	source := &fakeSource{err: fmt.Errorf("%w: %w", nm.ErrBusUnavailable, errTestSocket)}

	code, stdout, stderr := runApp(t, source, "status")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: system bus unavailable")
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runApp(t, &fakeSource{}, "restart")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown command")

	code, _, stderr = runApp(t, &fakeSource{}, "status", "-format", "yaml")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown output format")

	code, _, stderr = runApp(t, &fakeSource{}, "-format", "xml", "version")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown output format")
}

func TestRunRejectsBadConfiguredFormat(t *testing.T) {
	t.Setenv("NMSTATUS_FORMAT", "yaml")

	code, stdout, stderr := runApp(t, &fakeSource{status: sampleReport()}, "status")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown output format")
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runApp(t, &fakeSource{}, "-help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "nmstatus [options] status")
}

func TestRunLoggingKeepsEnvDefaultsUnderOverlay(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_CONSOLE", "true")
	t.Setenv("NMSTATUS_LOGGING_DEBUG", "true")

	var seen *nm.Config

	app := &App{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		NewSource: func(_ logger.Logger, cfg *nm.Config) (StatusSource, error) {
			seen = cfg
			return &fakeSource{ver: "1.42.0"}, nil
		},
	}

	missing := filepath.Join(t.TempDir(), "nmstatus.json")
	require.Equal(t, exitOK, app.Run(context.Background(), []string{"-config", missing, "version"}))

	require.NotNil(t, seen)
	require.NotNil(t, seen.Logging)
	assert.Equal(t, "warn", seen.Logging.Level)
	assert.True(t, seen.Logging.Console)
	assert.True(t, seen.Logging.Debug)
}
