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
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Dracula theme colors.
const (
	draculaCyan    = "#8BE9FD"
	draculaGreen   = "#50FA7B"
	draculaOrange  = "#FFB86C"
	draculaPurple  = "#BD93F9"
	draculaYellow  = "#F1FA8C"
	draculaComment = "#6272A4"
)

const (
	indentUnit  = "  "
	absentText  = "n/a"
	emptyList   = "[]"
	emptyRecord = "{}"
	listBullet  = "- "
)

type textStyles struct {
	key, str, num, boolean, absent lipgloss.Style
}

func newTextStyles() textStyles {
	return textStyles{
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan)).Bold(true),
		str:     lipgloss.NewStyle().Foreground(lipgloss.Color(draculaYellow)),
		num:     lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple)),
		boolean: lipgloss.NewStyle().Foreground(lipgloss.Color(draculaOrange)),
		absent:  lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment)).Italic(true),
	}
}

// TextRenderer prints a Value as an indented tree.
type TextRenderer struct {
	color  bool
	styles textStyles
}

// NewTextRenderer returns a renderer. With color disabled the output is plain
// text and stable for tests and pipes.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{color: color, styles: newTextStyles()}
}

func (t *TextRenderer) paint(style lipgloss.Style, s string) string {
	if !t.color {
		return s
	}

	return style.Render(s)
}

// Render returns the tree terminated by a newline.
func (t *TextRenderer) Render(v Value) string {
	var sb strings.Builder

	switch v.kind {
	case KindRecord, KindList:
		if v.Len() == 0 {
			sb.WriteString(t.scalar(v))
			sb.WriteByte('\n')

			break
		}

		t.writeNested(&sb, v, 0)
	case KindAbsent, KindBool, KindInt, KindString:
		sb.WriteString(t.scalar(v))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (t *TextRenderer) scalar(v Value) string {
	switch v.kind {
	case KindAbsent:
		return t.paint(t.styles.absent, absentText)
	case KindBool:
		return t.paint(t.styles.boolean, strconv.FormatBool(v.b))
	case KindInt:
		return t.paint(t.styles.num, strconv.FormatInt(v.i, 10))
	case KindString:
		return t.paint(t.styles.str, quoteIfAmbiguous(v.s))
	case KindList:
		return emptyList
	case KindRecord:
		return emptyRecord
	default:
		return ""
	}
}

// quoteIfAmbiguous quotes strings that would otherwise read as another kind,
// such as "", "n/a", "[]", "true" or "42", or that carry edge whitespace or
// control characters.
func quoteIfAmbiguous(s string) string {
	switch s {
	case "", absentText, emptyList, emptyRecord, "true", "false":
		return strconv.Quote(s)
	}

	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.Quote(s)
	}

	if strings.TrimSpace(s) != s || strings.ContainsFunc(s, unicode.IsControl) || strings.HasPrefix(s, `"`) {
		return strconv.Quote(s)
	}

	return s
}

func isNested(v Value) bool {
	return (v.kind == KindRecord || v.kind == KindList) && v.Len() > 0
}

func (t *TextRenderer) writeNested(sb *strings.Builder, v Value, depth int) {
	pad := strings.Repeat(indentUnit, depth)

	if v.kind == KindRecord {
		for i, k := range v.rec.keys {
			child := v.rec.vals[i]
			sb.WriteString(pad)
			sb.WriteString(t.paint(t.styles.key, k))
			sb.WriteByte(':')

			if isNested(child) {
				sb.WriteByte('\n')
				t.writeNested(sb, child, depth+1)

				continue
			}

			sb.WriteByte(' ')
			sb.WriteString(t.scalar(child))
			sb.WriteByte('\n')
		}

		return
	}

	for _, item := range v.list {
		sb.WriteString(pad)
		sb.WriteString(listBullet)

		if !isNested(item) {
			sb.WriteString(t.scalar(item))
			sb.WriteByte('\n')

			continue
		}

		// The first line of a nested item shares the bullet line.
		var inner strings.Builder
		t.writeNested(&inner, item, depth+1)
		sb.WriteString(strings.TrimPrefix(inner.String(), strings.Repeat(indentUnit, depth+1)))
	}
}
