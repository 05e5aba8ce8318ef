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

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON encodes records as objects in insertion order, lists as arrays
// and Absent as null.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return FromRecord(r).MarshalJSON()
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindAbsent:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindString:
		return writeJSONString(buf, v.s)
	case KindList:
		buf.WriteByte('[')

		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindRecord:
		buf.WriteByte('{')

		for i, k := range v.rec.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSONString(buf, k); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := v.rec.vals[i].writeJSON(buf); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	buf.Write(b)

	return nil
}

// MarshalIndent is json.MarshalIndent for a Value, keeping field order.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
