// Copyright 2025 The atomcore Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

// EventType names the kind of an Event in the event-stream emission mode.
// The set mirrors the teacher's own EventType family one-for-one; the
// names are the vocabulary a pull-parser or a tree-flattener both speak.
type EventType int

const (
	NoEvent EventType = iota
	StreamStartEvent
	StreamEndEvent
	DocumentStartEvent
	DocumentEndEvent
	AliasEvent
	ScalarEvent
	SequenceStartEvent
	SequenceEndEvent
	MappingStartEvent
	MappingEndEvent
)

func (t EventType) String() string {
	switch t {
	case NoEvent:
		return "no-event"
	case StreamStartEvent:
		return "stream-start"
	case StreamEndEvent:
		return "stream-end"
	case DocumentStartEvent:
		return "document-start"
	case DocumentEndEvent:
		return "document-end"
	case AliasEvent:
		return "alias"
	case ScalarEvent:
		return "scalar"
	case SequenceStartEvent:
		return "sequence-start"
	case SequenceEndEvent:
		return "sequence-end"
	case MappingStartEvent:
		return "mapping-start"
	case MappingEndEvent:
		return "mapping-end"
	}
	return "unknown-event"
}

// ScalarStyle requests how a ScalarEvent's value should be rendered. It is
// a hint: the emitter falls back to a safe style when the requested one
// cannot represent the value (e.g. a plain scalar that would be mistaken
// for a different type).
type ScalarStyle int

const (
	ScalarAny ScalarStyle = iota
	ScalarPlain
	ScalarSingleQuoted
	ScalarDoubleQuoted
	ScalarLiteral
	ScalarFolded
)

// SequenceStyle requests flow or block form for a sequence.
type SequenceStyle int

const (
	SequenceAny SequenceStyle = iota
	SequenceBlock
	SequenceFlow
)

// MappingStyle requests flow or block form for a mapping.
type MappingStyle int

const (
	MappingAny MappingStyle = iota
	MappingBlock
	MappingFlow
)

// Event is one step of the event-stream emission mode: the same
// vocabulary a SAX-style YAML parser would emit, driven directly into
// Emitter.Emit without ever building a Node tree.
type Event struct {
	Type EventType

	Anchor string
	Tag    string
	Value  string // ScalarEvent: the emitter-ready decoded scalar text
	Target string // AliasEvent: the anchor being referenced

	ScalarStyle   ScalarStyle
	SequenceStyle SequenceStyle
	MappingStyle  MappingStyle

	PlainImplicit  bool
	QuotedImplicit bool

	HeadComment string
	LineComment string
	FootComment string
}

// NodeKind names the kind of a Node in the document-tree emission mode.
type NodeKind int

const (
	ScalarNode NodeKind = iota
	SequenceNode
	MappingNode
	AliasNode
)

// Node is one node of a pre-built document tree, the input to the
// document-tree emission mode. RenderNode walks a Node tree and flattens
// it into the same Event vocabulary the event-stream mode consumes, so
// both modes are driven through one Emit state machine and are
// byte-identical by construction rather than by parallel maintenance.
type Node struct {
	Kind NodeKind

	Anchor string
	Tag    string
	Value  string // ScalarNode

	Content []*Node // SequenceNode: elements; MappingNode: key,value,key,value,...

	Alias string // AliasNode: anchor being referenced

	ScalarStyle   ScalarStyle
	SequenceStyle SequenceStyle
	MappingStyle  MappingStyle

	HeadComment string
	LineComment string
	FootComment string
}
