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

package report

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an insertion-ordered map with unique keys. It is filled by a
// single goroutine while a node is folded and treated as read-only after it
// has been wrapped into a Value.
type Record struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewRecord builds a record from fields in order. A repeated key keeps its
// first position and takes the last value.
func NewRecord(fields ...Field) *Record {
	r := &Record{
		keys:  make([]string, 0, len(fields)),
		index: make(map[string]int, len(fields)),
		vals:  make([]Value, 0, len(fields)),
	}

	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}

	return r
}

// Set appends key or replaces its value in place.
func (r *Record) Set(key string, v Value) {
	if i, ok := r.index[key]; ok {
		r.vals[i] = v
		return
	}

	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, v)
}

// SetPath stores v under a nested path, creating intermediate records as
// needed. An existing non-record value on the way is replaced by a record.
func (r *Record) SetPath(path []string, v Value) {
	switch len(path) {
	case 0:
		return
	case 1:
		r.Set(path[0], v)
		return
	}

	child, ok := r.Get(path[0]).AsRecord()
	if !ok {
		child = NewRecord()
		r.Set(path[0], FromRecord(child))
	}

	child.SetPath(path[1:], v)
}

func (r *Record) Get(key string) Value {
	if r == nil {
		return Absent()
	}

	i, ok := r.index[key]
	if !ok {
		return Absent()
	}

	return r.vals[i]
}

func (r *Record) Has(key string) bool {
	if r == nil {
		return false
	}

	_, ok := r.index[key]

	return ok
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	out := make([]string, len(r.keys))
	copy(out, r.keys)

	return out
}

// Fields returns the fields in insertion order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}

	out := make([]Field, len(r.keys))
	for i, k := range r.keys {
		out[i] = Field{Key: k, Value: r.vals[i]}
	}

	return out
}

func (r *Record) Equal(o *Record) bool {
	if r.Len() != o.Len() {
		return false
	}

	for i := 0; i < r.Len(); i++ {
		if r.keys[i] != o.keys[i] || !r.vals[i].Equal(o.vals[i]) {
			return false
		}
	}

	return true
}
