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

// Package report holds the nested, ordered value tree produced by one status
// collection pass.
package report

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindString
	KindList
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is an immutable report node. The zero Value is Absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	list []Value
	rec  *Record
}

// Absent returns the marker used for anything that could not be read.
func Absent() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// List copies items so later changes to the caller's slice are not observed.
func List(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)

	return Value{kind: KindList, list: out}
}

// FromRecord wraps r. A nil record yields an empty record.
func FromRecord(r *Record) Value {
	if r == nil {
		r = NewRecord()
	}

	return Value{kind: KindRecord, rec: r}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsBool returns the boolean and whether v holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsList returns a copy of the list items.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	out := make([]Value, len(v.list))
	copy(out, v.list)

	return out, true
}

func (v Value) AsRecord() (*Record, bool) {
	if v.kind != KindRecord {
		return nil, false
	}

	return v.rec, true
}

// Len is the number of list items or record fields, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindRecord:
		return v.rec.Len()
	case KindAbsent, KindBool, KindInt, KindString:
		return 0
	default:
		return 0
	}
}

// Get looks up a field when v is a record. Missing keys and non-records
// yield Absent.
func (v Value) Get(key string) Value {
	if v.kind != KindRecord {
		return Absent()
	}

	return v.rec.Get(key)
}

// Path walks nested records, e.g. Path("interface", "name").
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
	}

	return cur
}

// Equal reports deep equality, including record field order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindAbsent:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}

		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}

		return true
	case KindRecord:
		return v.rec.Equal(o.rec)
	default:
		return false
	}
}
