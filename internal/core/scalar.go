// Copyright 2025 The atomcore Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import "strconv"

// selectScalarStyle picks the style to actually render value in, given the
// style the caller requested. It upgrades an unsafe choice to a safe one:
// a plain request is only honored when value can round-trip as plain (no
// ambiguity with another type, no leading/trailing whitespace, no
// document-marker-like prefix); any JSON-family mode additionally forbids
// single-quoted, literal, and folded styles outright; a flow context (a
// request made while nested inside a flow sequence/mapping) upgrades a
// block-scalar request the same way, following a line-break-or-printable
// check instead of JSON's stricter literal/number check.
func selectScalarStyle(value string, requested ScalarStyle, cfg Config, plainImplicit, quotedImplicit bool, inFlow bool) ScalarStyle {
	if cfg.isJSON() {
		if cfg.mode == ModeJSONTaggedPlain {
			if (looksLikeJSONLiteral(value) || !plainImplicit) && canPlain(value) {
				return ScalarPlain
			}
			return ScalarDoubleQuoted
		}
		if looksLikeJSONLiteral(value) && plainImplicit {
			return ScalarPlain
		}
		return ScalarDoubleQuoted
	}
	if cfg.canonical {
		return ScalarDoubleQuoted
	}
	switch requested {
	case ScalarLiteral, ScalarFolded:
		if inFlow {
			return quotedStyleForFlow(value)
		}
		if canBlock(value) {
			return requested
		}
		return ScalarDoubleQuoted
	case ScalarSingleQuoted:
		if canSingleQuoted(value) {
			return requested
		}
		return ScalarDoubleQuoted
	case ScalarPlain, ScalarAny:
		if plainImplicit && canPlain(value) {
			return ScalarPlain
		}
		return ScalarDoubleQuoted
	default:
		return ScalarDoubleQuoted
	}
}

// quotedStyleForFlow picks a quoted style for a block-scalar request that
// landed inside a flow context, per spec.md §4.H: double-quoted if the
// text has a line break, single-quoted if it's otherwise all printable,
// double-quoted again as the final fallback for non-printable content.
func quotedStyleForFlow(value string) ScalarStyle {
	b := []byte(value)
	for i := 0; i < len(b); i++ {
		if isLineBreak(b, i) {
			return ScalarDoubleQuoted
		}
	}
	if canSingleQuoted(value) {
		return ScalarSingleQuoted
	}
	return ScalarDoubleQuoted
}

func looksLikeJSONLiteral(v string) bool {
	switch v {
	case "true", "false", "null":
		return true
	}
	if v == "" {
		return false
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	return false
}

// canBlock reports whether value may be rendered as a literal/folded
// block scalar: not empty and containing no tab.
func canBlock(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] == '\t' {
			return false
		}
	}
	return true
}

func canSingleQuoted(value string) bool {
	for i := 0; i < len(value); {
		if !isPrintable([]byte(value), i) {
			return false
		}
		i += width([]byte(value), i)
	}
	return true
}

// canPlain reports whether value is syntactically safe to render
// unquoted: printable, no leading/trailing whitespace, no leading
// indicator character, no "key: " or " #comment" collision. It does NOT
// reject text that happens to read as a bool/null/number — an actual
// number or boolean value SHOULD render plain (spec.md §8's own scenario,
// `[1,2,3]` in block mode, renders as bare `1`/`2`/`3`). Whether that
// reading is the one the caller intends is plainImplicit's job, checked
// by selectScalarStyle before calling canPlain; a string whose content
// merely collides with another type's plain form is quoted because the
// caller marks it plainImplicit=false, not because canPlain second-guesses
// it here.
func canPlain(value string) bool {
	if value == "" {
		return false
	}
	b := []byte(value)
	if isBlank(b, 0) || isBlank(b, len(b)-1) {
		return false
	}
	switch value[0] {
	case '!', '&', '*', '-', '?', ',', '[', ']', '{', '}', '#', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	for i := 0; i < len(b); {
		if !isPrintable(b, i) {
			return false
		}
		if b[i] == ':' && (i+1 >= len(b) || isBlank(b, i+1)) {
			return false
		}
		if b[i] == '#' && i > 0 && isBlank(b, i-1) {
			return false
		}
		i += width(b, i)
	}
	return true
}

// writePlainScalar writes value with no quoting, folding at column
// boundaries per cfg.Width() the same way the teacher's own
// writePlainScalar does.
func writePlainScalar(w *writerState, value string, indent int, cfg Config) {
	writeFoldedText(w, value, indent, cfg, false, false)
}

// writeSingleQuotedScalar writes value inside single quotes, doubling any
// embedded quote character.
func writeSingleQuotedScalar(w *writerState, value string, indent int, cfg Config) {
	w.writeIndicator("'", true, false, false)
	b := []byte(value)
	start := 0
	for i := 0; i < len(b); i++ {
		if b[i] == '\'' {
			w.puts(string(b[start : i+1]))
			w.puts("'")
			start = i + 1
		}
	}
	w.puts(string(b[start:]))
	w.writeIndicator("'", false, false, false)
}

// writeDoubleQuotedScalar writes value inside double quotes, escaping
// control characters, the quote and backslash, and (unless cfg.Unicode())
// every code point above U+007F.
func writeDoubleQuotedScalar(w *writerState, value string, indent int, cfg Config) {
	w.writeIndicator("\"", true, false, false)
	b := []byte(value)
	for i := 0; i < len(b); {
		r, sz := utf8Get(b[i:])
		if sz == 0 {
			sz = 1
			r = rune(b[i])
		}
		if esc, ok := reverseEscape(r); ok {
			w.puts(esc)
			i += sz
			continue
		}
		if r >= 0x20 && r <= 0x7E {
			w.writeByte(byte(r))
			i += sz
			continue
		}
		if !cfg.unicode || !isPrintable(b, i) {
			w.puts(escapeUnicode(r))
			i += sz
			continue
		}
		w.writeRune(r)
		i += sz
	}
	w.writeIndicator("\"", false, false, false)
}

func reverseEscape(r rune) (string, bool) {
	switch r {
	case 0x00:
		return "\\0", true
	case 0x07:
		return "\\a", true
	case 0x08:
		return "\\b", true
	case 0x09:
		return "\\t", true
	case 0x0A:
		return "\\n", true
	case 0x0B:
		return "\\v", true
	case 0x0C:
		return "\\f", true
	case 0x0D:
		return "\\r", true
	case 0x1B:
		return "\\e", true
	case 0x22:
		return "\\\"", true
	case 0x5C:
		return "\\\\", true
	case 0x85:
		return "\\N", true
	case 0xA0:
		return "\\_", true
	case 0x2028:
		return "\\L", true
	case 0x2029:
		return "\\P", true
	}
	return "", false
}

func escapeUnicode(r rune) string {
	switch {
	case r <= 0xFF:
		return "\\x" + hexPad(int64(r), 2)
	case r <= 0xFFFF:
		return "\\u" + hexPad(int64(r), 4)
	default:
		return "\\U" + hexPad(int64(r), 8)
	}
}

func hexPad(v int64, width int) string {
	s := strconv.FormatInt(v, 16)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// writeBlockScalarHints writes the "|" or ">" indicator, an explicit
// indentation-indicator digit when indent cannot be inferred from the
// first non-empty line, and the chomping indicator.
func writeBlockScalarHints(w *writerState, indicator string, chomp Chomp, explicitIndent int) {
	w.writeIndicator(indicator, true, false, false)
	if explicitIndent > 0 {
		w.puts(strconv.Itoa(explicitIndent))
	}
	switch chomp {
	case ChompStrip:
		w.puts("-")
	case ChompKeep:
		w.puts("+")
	}
}

// deriveChomp inspects value's trailing line breaks and returns the chomping
// indicator that reproduces them exactly: ChompStrip for none, ChompKeep for
// two or more, ChompClip (no indicator) for exactly one.
func deriveChomp(value string) Chomp {
	switch n := countTrailingBreaks([]byte(value)); {
	case n == 0:
		return ChompStrip
	case n > 1:
		return ChompKeep
	default:
		return ChompClip
	}
}

// writeLiteralScalar writes value as a literal block scalar at the given
// indent, with no folding: every line break in value is written as-is.
func writeLiteralScalar(w *writerState, value string, indent int, chomp Chomp, cfg Config) {
	writeBlockScalarHints(w, "|", chomp, 0)
	writeBlockBody(w, value, indent, cfg, false)
}

// writeFoldedScalar writes value as a folded block scalar: single breaks
// between unindented lines are folded away on decode but must be
// re-inserted as breaks on encode since the folding direction here is
// "text value -> block scalar bytes", which always writes one break per
// logical line and lets the reader's own folding collapse runs back down.
func writeFoldedScalar(w *writerState, value string, indent int, chomp Chomp, cfg Config) {
	writeBlockScalarHints(w, ">", chomp, 0)
	writeBlockBody(w, value, indent, cfg, true)
}

func writeBlockBody(w *writerState, value string, indent int, cfg Config, folded bool) {
	b := []byte(value)
	i := 0
	for i <= len(b) {
		li := analyseLine(b, i)
		w.writeIndent(indent, cfg.lineBreak)
		w.puts(string(b[li.start:li.contentEnd]))
		if !li.hasBreak {
			break
		}
		w.writeLineBreak(cfg.lineBreak)
		i = li.end
	}
}

// writeFoldedText writes value with YAML's plain/folded-context line
// folding applied on the way out: long lines are broken at the last
// blank before cfg.Width(), re-indented to indent on the continuation.
// allowBlockIndicatorsAtStart and unused are reserved for callers (folded
// block bodies) that need slightly different first-character handling;
// the plain scalar writer passes false/false.
func writeFoldedText(w *writerState, value string, indent int, cfg Config, allowBlockIndicatorsAtStart, unused bool) {
	if w.has(wfWhitespace) {
		// already at a safe boundary
	} else {
		w.writeByte(' ')
	}
	words := splitFoldWords(value)
	for i, word := range words {
		if i > 0 {
			if cfg.bestWidth > 0 && w.column+1+len(word) > cfg.bestWidth {
				w.writeLineBreak(cfg.lineBreak)
				w.writeIndent(indent, cfg.lineBreak)
			} else {
				w.writeByte(' ')
			}
		}
		w.puts(word)
	}
	w.clear(wfWhitespace)
	w.clear(wfIndention)
}

// splitFoldWords splits on single spaces, treating the value's own
// embedded folded breaks (already decoded to spaces or literal breaks by
// the iterator) as ordinary word boundaries.
func splitFoldWords(value string) []string {
	var words []string
	start := 0
	for i := 0; i < len(value); i++ {
		if value[i] == ' ' {
			words = append(words, value[start:i])
			start = i + 1
		}
	}
	words = append(words, value[start:])
	return words
}
