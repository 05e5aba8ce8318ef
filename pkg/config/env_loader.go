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

package config

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/nmstatus/pkg/logger"
)

var durationType = reflect.TypeOf(time.Duration(0))

// EnvConfigLoader loads configuration from environment variables.
// Nested struct fields use underscore separation, so with prefix "NMSTATUS_"
// NMSTATUS_LOGGING_LEVEL maps to config.Logging.Level.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load overlays environment values onto dst. Fields without a matching
// variable keep their current value; nil pointers stay nil unless a variable
// below them is set.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	_, err := e.loadStruct(v, e.prefix)

	return err
}

// loadStruct reports whether any field was set.
func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) (bool, error) {
	t := v.Type()
	set := false

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		jsonTag := fieldType.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		envName := prefix + strings.ToUpper(strings.Split(jsonTag, ",")[0])

		fieldSet, err := e.loadField(field, envName)
		if err != nil {
			return set, err
		}

		set = set || fieldSet
	}

	return set, nil
}

func (e *EnvConfigLoader) loadField(field reflect.Value, envName string) (bool, error) {
	switch {
	case field.Kind() == reflect.Struct:
		return e.loadStruct(field, envName+"_")

	case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct:
		target := reflect.New(field.Type().Elem())
		if !field.IsNil() {
			target.Elem().Set(field.Elem())
		}

		set, err := e.loadStruct(target.Elem(), envName+"_")
		if err != nil || !set {
			return false, err
		}

		field.Set(target)

		return true, nil
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok || envValue == "" {
		return false, nil
	}

	if field.Kind() == reflect.Ptr {
		target := reflect.New(field.Type().Elem())
		if err := setScalar(target.Elem(), envName, envValue); err != nil {
			return false, err
		}

		field.Set(target)
	} else if err := setScalar(field, envName, envValue); err != nil {
		return false, err
	}

	if e.logger != nil {
		e.logger.Debug().
			Str("env", envName).
			Str("value", "[set]").
			Msg("Loaded value from environment variable")
	}

	return true, nil
}

func setScalar(field reflect.Value, envName, envValue string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)

	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
		}

		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf("invalid duration value for %s: %w", envName, err)
			}

			field.SetInt(int64(d))

			return nil
		}

		i, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %w", envName, err)
		}

		field.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value for %s: %w", envName, err)
		}

		field.SetUint(u)

	default:
		return fmt.Errorf("%w: %s has kind %s", errUnsupportedField, envName, field.Kind())
	}

	return nil
}
