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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/nmstatus/pkg/report"
)

var errTestRead = errors.New("read failure")

func TestFetchSuccess(t *testing.T) {
	t.Parallel()

	o := Fetch(context.Background(), func(context.Context) (string, error) { return "1.42.0", nil })

	v, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, "1.42.0", v)
	require.NoError(t, o.Cause())
	assert.False(t, o.Absent())
}

func TestFetchFailureAndAbsenceConvertAlike(t *testing.T) {
	t.Parallel()

	failed := Fetch(context.Background(), func(context.Context) (uint32, error) { return 7, errTestRead })
	absent := Fetch(context.Background(), func(context.Context) (uint32, error) {
		return 0, fmt.Errorf("%w: no such property", ErrAbsent)
	})

	for _, o := range []Outcome[uint32]{failed, absent} {
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.True(t, Convert(o, uintValue).IsAbsent())
	}

	assert.False(t, failed.Absent())
	assert.True(t, absent.Absent())
	assert.ErrorIs(t, failed.Cause(), errTestRead)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := Optional(ctx, func(context.Context) (uint32, error) { return 20, nil }, decoded(DomainDeviceState))
	assert.True(t, report.String("unavailable").Equal(got))

	got = Optional(ctx, func(context.Context) (uint32, error) { return 0, errTestRead }, decoded(DomainDeviceState))
	assert.True(t, got.IsAbsent())
}
