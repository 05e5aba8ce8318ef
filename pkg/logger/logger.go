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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger without global state.
type zerologLogger struct {
	logger zerolog.Logger
}

// New creates a logger from config; nil uses DefaultConfig.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer = os.Stderr
	if config.Output == OutputStdout {
		output = os.Stdout
	}

	return newWithWriter(config, output)
}

// NewComponentLogger creates a logger tagged with a component field.
func NewComponentLogger(component string, config *Config) (Logger, error) {
	l, err := New(config)
	if err != nil {
		return nil, err
	}

	return &zerologLogger{logger: l.WithComponent(component)}, nil
}

func newWithWriter(config *Config, output io.Writer) (*zerologLogger, error) {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	timeFormat := time.RFC3339
	if config.TimeFormat != "" {
		timeFormat = config.TimeFormat
		// zerolog keeps the field format process-wide.
		zerolog.TimeFieldFormat = timeFormat
	}

	if config.Console {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: timeFormat}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zerologLogger{logger: zlog}, nil
}

func (l *zerologLogger) Trace() *zerolog.Event {
	return l.logger.Trace()
}

func (l *zerologLogger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

func (l *zerologLogger) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *zerologLogger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

func (l *zerologLogger) Error() *zerolog.Event {
	return l.logger.Error()
}

func (l *zerologLogger) Fatal() *zerolog.Event {
	return l.logger.Fatal()
}

func (l *zerologLogger) Panic() *zerolog.Event {
	return l.logger.Panic()
}

func (l *zerologLogger) With() zerolog.Context {
	return l.logger.With()
}

func (l *zerologLogger) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}

func (l *zerologLogger) WithFields(fields map[string]interface{}) zerolog.Logger {
	return l.logger.With().Fields(fields).Logger()
}

func (l *zerologLogger) SetLevel(level zerolog.Level) {
	l.logger = l.logger.Level(level)
}

func (l *zerologLogger) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
