// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"go.yaml.in/atomcore/internal/testutil/assert"
)

func TestAnalyseLineSimple(t *testing.T) {
	raw := []byte("hello\nworld")
	li := analyseLine(raw, 0)
	assert.Equalf(t, "hello", string(raw[li.start:li.contentEnd]), "content = %q, want %q", raw[li.start:li.contentEnd], "hello")
	assert.Truef(t, li.hasBreak, "hasBreak = false, want true")
	assert.Equalf(t, 1, li.breakLen, "breakLen = %d, want 1", li.breakLen)
	assert.Equalf(t, 6, li.end, "end = %d, want 6", li.end)
}

func TestAnalyseLineCRLF(t *testing.T) {
	raw := []byte("hello\r\nworld")
	li := analyseLine(raw, 0)
	assert.Equalf(t, 2, li.breakLen, "breakLen = %d, want 2", li.breakLen)
	assert.Equalf(t, 7, li.end, "end = %d, want 7", li.end)
}

func TestAnalyseLineLastLineNoBreak(t *testing.T) {
	raw := []byte("hello")
	li := analyseLine(raw, 0)
	assert.Truef(t, !li.hasBreak, "hasBreak = true, want false")
	assert.Equalf(t, len(raw), li.end, "end = %d, want %d", li.end, len(raw))
}

func TestAnalyseLineTabExpansion(t *testing.T) {
	raw := []byte("a\tb")
	li := analyseLine(raw, 0)
	// 'a' -> column 1, tab expands to the next multiple of 8 -> column 8,
	// 'b' -> column 9.
	assert.Equalf(t, 9, li.column, "column = %d, want 9", li.column)
}

func TestAnalyseLineAllBlank(t *testing.T) {
	raw := []byte("   \nnext")
	li := analyseLine(raw, 0)
	assert.Truef(t, li.allBlank, "allBlank = false, want true")
}

func TestDirectShortcut(t *testing.T) {
	assert.Truef(t, directShortcut([]byte("hello"), 0, 5), "directShortcut(no blanks) = false, want true")
	assert.Truef(t, !directShortcut([]byte("he llo"), 0, 6), "directShortcut(with space) = true, want false")
}
