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
	"errors"

	"github.com/carverauto/nmstatus/pkg/report"
)

// Accessor reads one remote attribute.
type Accessor[T any] func(ctx context.Context) (T, error)

// Outcome is the result of one attribute read: a value, or unavailable.
// Failure and absence are the same state; the cause is kept for logging only.
type Outcome[T any] struct {
	value T
	cause error
}

// Fetch runs read and captures its result.
func Fetch[T any](ctx context.Context, read Accessor[T]) Outcome[T] {
	v, err := read(ctx)
	if err != nil {
		var zero T
		return Outcome[T]{value: zero, cause: err}
	}

	return Outcome[T]{value: v}
}

// Get returns the value and whether it is available.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.cause == nil
}

// Cause returns why the value is unavailable, or nil.
func (o Outcome[T]) Cause() error {
	return o.cause
}

// Absent reports whether the remote side returned no value, as opposed to
// the read failing.
func (o Outcome[T]) Absent() bool {
	return errors.Is(o.cause, ErrAbsent)
}

// Convert turns an outcome into a report value; unavailable becomes Absent.
func Convert[T any](o Outcome[T], convert func(T) report.Value) report.Value {
	v, ok := o.Get()
	if !ok {
		return report.Absent()
	}

	return convert(v)
}

// Optional reads one attribute and converts it, never failing.
func Optional[T any](ctx context.Context, read Accessor[T], convert func(T) report.Value) report.Value {
	return Convert(Fetch(ctx, read), convert)
}
