//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

// Package atomcore implements the scalar-decoding and YAML/JSON-emission
// core of a YAML 1.2 processing library: the atom/iterator layer that
// turns a raw byte range into a scalar's logical text, and a dual-mode
// emitter that renders either a pre-built document tree or a caller-fed
// event stream to byte-identical output.
//
// Scanning a byte stream into atoms, parsing a token stream into a
// document tree, and everything above the wire format (CLI, config
// loading, file I/O) are out of scope for this package; see SPEC_FULL.md.
package atomcore

import (
	"bytes"
	"io"

	"go.yaml.in/atomcore/internal/core"
)

// Re-export types from internal/core.
type (
	Emitter       = core.Emitter
	Event         = core.Event
	EventType     = core.EventType
	Node          = core.Node
	NodeKind      = core.NodeKind
	Atom          = core.Atom
	AtomStyle     = core.Style
	Chomp         = core.Chomp
	Input         = core.Input
	AtomIterator  = core.AtomIterator
	ScalarStyle   = core.ScalarStyle
	SequenceStyle = core.SequenceStyle
	MappingStyle  = core.MappingStyle
	Sink          = core.Sink
)

// Re-export EventType constants.
const (
	StreamStartEvent   = core.StreamStartEvent
	StreamEndEvent     = core.StreamEndEvent
	DocumentStartEvent = core.DocumentStartEvent
	DocumentEndEvent   = core.DocumentEndEvent
	AliasEvent         = core.AliasEvent
	ScalarEvent        = core.ScalarEvent
	SequenceStartEvent = core.SequenceStartEvent
	SequenceEndEvent   = core.SequenceEndEvent
	MappingStartEvent  = core.MappingStartEvent
	MappingEndEvent    = core.MappingEndEvent
)

// Re-export NodeKind constants.
const (
	ScalarNode   = core.ScalarNode
	SequenceNode = core.SequenceNode
	MappingNode  = core.MappingNode
	AliasNode    = core.AliasNode
)

// Re-export atom Style constants.
const (
	StylePlain              = core.StylePlain
	StyleSingleQuoted       = core.StyleSingleQuoted
	StyleDoubleQuoted       = core.StyleDoubleQuoted
	StyleDoubleQuotedManual = core.StyleDoubleQuotedManual
	StyleLiteral            = core.StyleLiteral
	StyleFolded             = core.StyleFolded
	StyleURI                = core.StyleURI
	StyleComment            = core.StyleComment
)

// Re-export Chomp constants.
const (
	ChompClip  = core.ChompClip
	ChompStrip = core.ChompStrip
	ChompKeep  = core.ChompKeep
)

// Re-export scalar/sequence/mapping style request constants.
const (
	ScalarAny          = core.ScalarAny
	ScalarPlainStyle   = core.ScalarPlain
	ScalarSingleQuoted = core.ScalarSingleQuoted
	ScalarDoubleQuoted = core.ScalarDoubleQuoted
	ScalarLiteral      = core.ScalarLiteral
	ScalarFolded       = core.ScalarFolded

	SequenceAny   = core.SequenceAny
	SequenceBlock = core.SequenceBlock
	SequenceFlow  = core.SequenceFlow

	MappingAny   = core.MappingAny
	MappingBlock = core.MappingBlock
	MappingFlow  = core.MappingFlow
)

// NewEmitter creates an Emitter that writes to sink, configured by opts.
func NewEmitter(sink Sink, opts ...Option) *Emitter {
	return core.NewEmitter(sink, opts...)
}

// NewWriterEmitter creates an Emitter that writes to w, the common case
// of driving output into an io.Writer instead of a raw Sink callback.
func NewWriterEmitter(w io.Writer, opts ...Option) *Emitter {
	return core.NewEmitter(func(p []byte) error {
		_, err := w.Write(p)
		return err
	}, opts...)
}

// EncodeNode renders root to w as a single YAML or JSON document.
func EncodeNode(w io.Writer, root *Node, opts ...Option) error {
	e := NewWriterEmitter(w, opts...)
	if err := e.RenderNode(root); err != nil {
		return err
	}
	return e.Err()
}

// MarshalNode renders root to a byte slice, the buffered convenience form
// of EncodeNode for callers that don't already have a Writer.
func MarshalNode(root *Node, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeNode(&buf, root, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewMemoryInput wraps data as an Input backed directly by the given
// byte slice, with no copy.
func NewMemoryInput(data []byte) *Input { return core.NewMemoryInput(data) }

// NewFileInput wraps data (a file's full contents, already read into
// memory by the caller) as an Input, recording name for diagnostics.
func NewFileInput(name string, data []byte) *Input { return core.NewFileInput(name, data) }

// NewStreamInput wraps data (bytes already accumulated from an
// io.Reader by the caller) as an Input.
func NewStreamInput(data []byte) *Input { return core.NewStreamInput(data) }

// NewAtom builds an Atom over in[start:end] in the given style.
func NewAtom(in *Input, start, end int, style AtomStyle, chomp Chomp, indent int) Atom {
	return core.NewAtom(in, start, end, style, chomp, indent)
}
