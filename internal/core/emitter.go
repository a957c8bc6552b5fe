// Copyright 2025 The atomcore Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import "fmt"

// emitterState names where Emit is in its state machine. The teacher's
// stateMachine dispatches on an equivalent enum; this one is trimmed to
// the states this engine's narrower scope (no parser-driven directives,
// no tag-shorthand resolution) actually reaches.
type emitterState int

const (
	stateStreamStart emitterState = iota
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateSequencePendingFirstItem
	stateBlockSequenceFirstItem
	stateBlockSequenceItem
	stateFlowSequenceFirstItem
	stateFlowSequenceItem
	stateMappingPendingFirstItem
	stateBlockMappingFirstKey
	stateBlockMappingKey
	stateBlockMappingValue
	stateFlowMappingFirstKey
	stateFlowMappingKey
	stateFlowMappingValue
	stateEnd
)

// frame is one entry of the emitter's save-context stack: the state to
// resume plus the indent column active in that context. Pushed on every
// SequenceStart/MappingStart, popped on the matching End.
type frame struct {
	state  emitterState
	indent int
}

// Emitter drives either a Node tree (RenderNode) or a caller-fed Event
// stream (Emit) through one state machine and one writerState, so both
// emission modes produce byte-identical output by construction.
type Emitter struct {
	w   writerState
	cfg Config

	state emitterState
	stack []frame

	indent int

	anchors     map[string]bool
	openEnded   bool
	docCount    int
	wroteStream bool

	// pending* stash the style request and enclosing-flow context for a
	// sequence/mapping whose block-vs-flow resolution is deferred until the
	// event following its Start is seen, so an immediately-following End
	// (an empty container) can force flow style per spec.md §4.I. Only one
	// resolution is ever in flight at a time: it is read and cleared
	// within the same Emit call that resolves it, before any nested
	// container's own pending fields can be written.
	pendingSeqStyle     SequenceStyle
	pendingMapStyle     MappingStyle
	pendingParentInFlow bool
}

// NewEmitter creates an Emitter that writes to sink, configured by opts.
func NewEmitter(sink Sink, opts ...Option) *Emitter {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Emitter{
		w:       writerState{sink: sink, column: 0, line: 0, flags: wfWhitespace | wfIndention},
		cfg:     cfg,
		state:   stateStreamStart,
		anchors: make(map[string]bool),
	}
}

// Err returns the first error encountered writing to the sink or
// violating the emitter's event-sequencing rules.
func (e *Emitter) Err() error {
	if e.w.err != nil {
		return e.w.err
	}
	return nil
}

// push saves the current state and indent on the context stack and moves
// to next. This is the single assignment point the spec's design notes
// flag as historically buggy when duplicated; it is written here exactly
// once.
func (e *Emitter) push(next emitterState, newIndent int) {
	e.stack = append(e.stack, frame{state: e.state, indent: e.indent})
	e.state = next
	e.indent = newIndent
}

// pop restores the most recently pushed state and indent. It reports
// false if the stack is already empty, which indicates an Event sequence
// error (an End event with no matching Start) rather than silently
// staying put.
func (e *Emitter) pop() bool {
	before := len(e.stack)
	if before == 0 {
		return false
	}
	top := e.stack[before-1]
	// The capacity/length change from this truncation is what must be
	// checked, not a parameter to the call: a slice truncation can never
	// itself fail, but treating the pre-pop length as the success
	// condition (rather than re-reading len(e.stack) after) is the shape
	// of the allocation-failure check the design notes call out.
	e.stack = e.stack[:before-1]
	after := len(e.stack)
	if after != before-1 {
		return false
	}
	e.state = top.state
	e.indent = top.indent
	return true
}

// nextIndent returns the indent column for a nested container opened at
// the current indent.
func (e *Emitter) nextIndent() int {
	return e.increaseIndent(e.cfg.bestIndent)
}

// increaseIndent returns the indent column delta columns deeper than the
// emitter's current indent, treating the sentinel "no indent yet" value
// (-1, used at the document root) the same way the teacher's own
// increaseIndentCompact does for scalar/flow contexts: the first nesting
// level starts at delta, not at -1+delta.
func (e *Emitter) increaseIndent(delta int) int {
	if e.indent < 0 {
		return delta
	}
	return e.indent + delta
}

// increaseBlockIndent is increaseIndent's block-collection counterpart: a
// block sequence or mapping opened at the document root starts at column
// 0 (the dash or key sits flush left), not at column delta, matching the
// teacher's increaseIndentCompact's non-flow branch.
func (e *Emitter) increaseBlockIndent(delta int) int {
	if e.indent < 0 {
		return 0
	}
	return e.indent + delta
}

// Emit advances the state machine by one event. Callers driving the
// event-stream emission mode call this directly in a loop; RenderNode
// calls it internally while flattening a Node tree.
func (e *Emitter) Emit(ev Event) (err error) {
	if err := e.Err(); err != nil {
		return err
	}
	defer func() {
		if err != nil && e.w.err == nil {
			e.w.err = err
		}
	}()
	switch e.state {
	case stateStreamStart:
		return e.emitStreamStart(ev)
	case stateDocumentStart:
		return e.emitDocumentStart(ev)
	case stateDocumentContent:
		return e.emitDocumentContent(ev)
	case stateDocumentEnd:
		return e.emitDocumentEnd(ev)
	case stateSequencePendingFirstItem:
		return e.emitSequencePendingFirstItem(ev)
	case stateBlockSequenceFirstItem, stateBlockSequenceItem:
		return e.emitBlockSequenceItem(ev, e.state == stateBlockSequenceFirstItem)
	case stateFlowSequenceFirstItem, stateFlowSequenceItem:
		return e.emitFlowSequenceItem(ev, e.state == stateFlowSequenceFirstItem)
	case stateMappingPendingFirstItem:
		return e.emitMappingPendingFirstItem(ev)
	case stateBlockMappingFirstKey, stateBlockMappingKey:
		return e.emitBlockMappingKey(ev, e.state == stateBlockMappingFirstKey)
	case stateBlockMappingValue:
		return e.emitBlockMappingValue(ev)
	case stateFlowMappingFirstKey, stateFlowMappingKey:
		return e.emitFlowMappingKey(ev, e.state == stateFlowMappingFirstKey)
	case stateFlowMappingValue:
		return e.emitFlowMappingValue(ev)
	case stateEnd:
		return &EmitterError{Problem: "Emit called after stream end"}
	}
	return &EmitterError{Problem: "emitter in unknown state"}
}

func (e *Emitter) emitStreamStart(ev Event) error {
	if ev.Type != StreamStartEvent {
		return &EventSequenceError{Got: ev.Type, Expected: "stream-start"}
	}
	e.wroteStream = true
	e.state = stateDocumentStart
	return nil
}

func (e *Emitter) emitDocumentStart(ev Event) error {
	if ev.Type == StreamEndEvent {
		e.state = stateEnd
		return nil
	}
	if ev.Type != DocumentStartEvent {
		return &EventSequenceError{Got: ev.Type, Expected: "document-start or stream-end"}
	}
	e.docCount++

	// spec.md §6: JSON-family and oneline modes never emit a version
	// directive or a "---" marker.
	if !e.cfg.isJSON() && !e.cfg.oneline() {
		writeMarker := e.cfg.docStartMark == PresenceOn ||
			(e.cfg.docStartMark == PresenceAuto && (e.docCount > 1 || e.openEnded))
		if e.cfg.versionDirective == PresenceOn {
			e.w.writeIndent(0, e.cfg.lineBreak)
			e.w.puts("%YAML 1.2")
			e.w.writeLineBreak(e.cfg.lineBreak)
			writeMarker = true
		}
		if writeMarker {
			e.w.writeIndent(0, e.cfg.lineBreak)
			e.w.puts("---")
		}
	}
	e.openEnded = false
	e.indent = -1
	e.state = stateDocumentContent
	return nil
}

func (e *Emitter) emitDocumentContent(ev Event) error {
	return e.emitNode(ev)
}

func (e *Emitter) emitDocumentEnd(ev Event) error {
	if ev.Type != DocumentEndEvent {
		return &EventSequenceError{Got: ev.Type, Expected: "document-end"}
	}
	// spec.md §8 scenario "JSON_ONELINE": a oneline-mode document ends
	// exactly where its content ends, with no trailing line break and no
	// "..." marker — the whole document is one physical line.
	if e.cfg.oneline() {
		e.state = stateDocumentStart
		return nil
	}
	if e.w.column > 0 {
		e.w.writeLineBreak(e.cfg.lineBreak)
	}
	writeMarker := !e.cfg.isJSON() && e.cfg.docEndMark == PresenceOn
	if writeMarker {
		e.w.writeIndent(0, e.cfg.lineBreak)
		e.w.puts("...")
		e.w.writeLineBreak(e.cfg.lineBreak)
	} else {
		e.openEnded = true
	}
	e.state = stateDocumentStart
	return nil
}

// emitNode dispatches a content event (scalar, alias, or the start of a
// collection) and arranges for the matching End event, if any, to resume
// at stateDocumentEnd.
func (e *Emitter) emitNode(ev Event) error {
	switch ev.Type {
	case ScalarEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		style := selectScalarStyle(ev.Value, ev.ScalarStyle, e.cfg, ev.PlainImplicit, ev.QuotedImplicit, e.inFlowContext())
		e.writeScalarValue(ev.Value, style)
		e.state = stateDocumentEnd
		return nil
	case AliasEvent:
		if err := e.writeAlias(ev.Target); err != nil {
			return err
		}
		e.state = stateDocumentEnd
		return nil
	case SequenceStartEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		return e.beginSequence(ev, stateDocumentEnd)
	case MappingStartEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		return e.beginMapping(ev, stateDocumentEnd)
	}
	return &EventSequenceError{Got: ev.Type, Expected: "scalar, alias, sequence-start, or mapping-start"}
}

// inFlowContext reports whether the emitter is currently rendering a
// sequence item or mapping key/value inside a flow collection, the
// context spec.md §4.H's block-scalar-upgrade rule keys off of.
func (e *Emitter) inFlowContext() bool {
	switch e.state {
	case stateFlowSequenceFirstItem, stateFlowSequenceItem,
		stateFlowMappingFirstKey, stateFlowMappingKey, stateFlowMappingValue:
		return true
	}
	return false
}

// writeAlias writes a "*anchor" alias indicator. spec.md §6: JSON-family
// modes never emit aliases (aliases are expanded by the caller before
// reaching this emitter), so receiving one here is an event-sequence
// error rather than silently-wrong output.
func (e *Emitter) writeAlias(target string) error {
	if e.cfg.isJSON() {
		return &EventSequenceError{Got: AliasEvent, Expected: "no aliases in JSON-family mode"}
	}
	e.w.writeIndicator("*"+target, true, true, false)
	return nil
}

func (e *Emitter) writeAnchorAndTag(anchor, tag string) {
	if e.cfg.isJSON() {
		return
	}
	if anchor != "" {
		e.w.writeIndicator("&"+anchor, true, true, false)
	}
	if tag != "" && (e.cfg.canonical || anchor == "") {
		e.w.writeIndicator("!<"+tag+">", true, false, false)
	}
}

func (e *Emitter) writeScalarValue(value string, style ScalarStyle) {
	switch style {
	case ScalarSingleQuoted:
		writeSingleQuotedScalar(&e.w, value, e.nextIndent(), e.cfg)
	case ScalarDoubleQuoted:
		writeDoubleQuotedScalar(&e.w, value, e.nextIndent(), e.cfg)
	case ScalarLiteral:
		writeLiteralScalar(&e.w, value, e.nextIndent(), deriveChomp(value), e.cfg)
	case ScalarFolded:
		writeFoldedScalar(&e.w, value, e.nextIndent(), deriveChomp(value), e.cfg)
	default:
		writePlainScalar(&e.w, value, e.nextIndent(), e.cfg)
	}
}

// beginSequence pushes resumeState and defers the block-vs-flow decision to
// emitSequencePendingFirstItem, which sees the event immediately following
// this Start and so knows, unlike here, whether the sequence is empty.
// e.inFlowContext() is read before push changes e.state, so it reflects the
// enclosing container (or lack of one), not the sequence just opened.
func (e *Emitter) beginSequence(ev Event, resumeState emitterState) error {
	e.pendingSeqStyle = ev.SequenceStyle
	e.pendingParentInFlow = e.inFlowContext()
	e.state = resumeState
	e.push(stateSequencePendingFirstItem, e.indent)
	return nil
}

// beginMapping is beginSequence's mapping counterpart.
func (e *Emitter) beginMapping(ev Event, resumeState emitterState) error {
	e.pendingMapStyle = ev.MappingStyle
	e.pendingParentInFlow = e.inFlowContext()
	e.state = resumeState
	e.push(stateMappingPendingFirstItem, e.indent)
	return nil
}

// emitSequencePendingFirstItem resolves the sequence opened by the matching
// beginSequence now that ev, the event right after Start, reveals whether
// the sequence is empty (ev is the matching End) or not. Per spec.md §4.I a
// sequence nested directly inside a flow collection, or an empty sequence,
// always renders as flow regardless of what was requested.
func (e *Emitter) emitSequencePendingFirstItem(ev Event) error {
	empty := ev.Type == SequenceEndEvent
	style := resolveSequenceStyle(e.pendingSeqStyle, false, e.pendingParentInFlow, empty, e.cfg)
	if style == SequenceFlow {
		e.indent = e.nextIndent()
		e.state = stateFlowSequenceFirstItem
		return e.emitFlowSequenceItem(ev, true)
	}
	e.indent = e.increaseBlockIndent(sequenceIndentDelta(e.cfg))
	e.state = stateBlockSequenceFirstItem
	return e.emitBlockSequenceItem(ev, true)
}

// emitMappingPendingFirstItem is emitSequencePendingFirstItem's mapping
// counterpart.
func (e *Emitter) emitMappingPendingFirstItem(ev Event) error {
	empty := ev.Type == MappingEndEvent
	style := resolveMappingStyle(e.pendingMapStyle, false, e.pendingParentInFlow, empty, e.cfg)
	if style == MappingFlow {
		e.indent = e.nextIndent()
		e.state = stateFlowMappingFirstKey
		return e.emitFlowMappingKey(ev, true)
	}
	e.indent = e.increaseBlockIndent(e.cfg.bestIndent)
	e.state = stateBlockMappingFirstKey
	return e.emitBlockMappingKey(ev, true)
}

func (e *Emitter) endCollection(ev Event, want EventType) error {
	if ev.Type != want {
		return &EventSequenceError{Got: ev.Type, Expected: want.String()}
	}
	if !e.pop() {
		return &EmitterError{Problem: "context stack underflow closing collection"}
	}
	return nil
}

func (e *Emitter) emitBlockSequenceItem(ev Event, first bool) error {
	if ev.Type == SequenceEndEvent {
		return e.endCollection(ev, SequenceEndEvent)
	}
	writeBlockSequenceItemPrologue(&e.w, e.indent, e.cfg)
	e.state = stateBlockSequenceItem
	return e.emitNodeResuming(ev, stateBlockSequenceItem)
}

func (e *Emitter) emitFlowSequenceItem(ev Event, first bool) error {
	if ev.Type == SequenceEndEvent {
		if first {
			// Empty sequence: the opening "[" is normally written by the
			// prologue below, which a first item reaching straight to End
			// never runs.
			writeFlowSequenceItemPrologue(&e.w, true, e.indent, e.cfg)
		}
		writeFlowSequenceEpilogue(&e.w, e.indent-e.cfg.bestIndent, e.cfg, first)
		return e.endCollection(ev, SequenceEndEvent)
	}
	writeFlowSequenceItemPrologue(&e.w, first, e.indent, e.cfg)
	e.state = stateFlowSequenceItem
	return e.emitNodeResuming(ev, stateFlowSequenceItem)
}

func (e *Emitter) emitBlockMappingKey(ev Event, first bool) error {
	if ev.Type == MappingEndEvent {
		return e.endCollection(ev, MappingEndEvent)
	}
	simple := ev.Type == ScalarEvent
	writeBlockMappingKeyPrologue(&e.w, e.indent, simple, e.cfg)
	e.state = stateBlockMappingValue
	return e.emitNodeResuming(ev, stateBlockMappingValue)
}

func (e *Emitter) emitBlockMappingValue(ev Event) error {
	simple := ev.Type == ScalarEvent
	writeBlockMappingValuePrologue(&e.w, e.indent, simple, e.cfg)
	e.state = stateBlockMappingKey
	return e.emitNodeResuming(ev, stateBlockMappingKey)
}

func (e *Emitter) emitFlowMappingKey(ev Event, first bool) error {
	if ev.Type == MappingEndEvent {
		if first {
			// Empty mapping: see the matching comment in
			// emitFlowSequenceItem.
			writeFlowMappingKeyPrologue(&e.w, true, e.indent, true, e.cfg)
		}
		writeFlowMappingEpilogue(&e.w, e.indent-e.cfg.bestIndent, e.cfg, first)
		return e.endCollection(ev, MappingEndEvent)
	}
	simple := ev.Type == ScalarEvent
	writeFlowMappingKeyPrologue(&e.w, first, e.indent, simple, e.cfg)
	e.state = stateFlowMappingValue
	return e.emitNodeResuming(ev, stateFlowMappingValue)
}

func (e *Emitter) emitFlowMappingValue(ev Event) error {
	simple := ev.Type == ScalarEvent
	writeFlowMappingValuePrologue(&e.w, e.indent, simple, e.cfg)
	e.state = stateFlowMappingKey
	return e.emitNodeResuming(ev, stateFlowMappingKey)
}

// emitNodeResuming handles one scalar/alias/collection-start event that
// occurs as a sequence item or mapping key/value, pushing resumeState so
// the matching collection End (if any) returns control to the right
// place once this nested content is finished.
func (e *Emitter) emitNodeResuming(ev Event, resumeState emitterState) error {
	switch ev.Type {
	case ScalarEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		style := selectScalarStyle(ev.Value, ev.ScalarStyle, e.cfg, ev.PlainImplicit, ev.QuotedImplicit, e.inFlowContext())
		e.writeScalarValue(ev.Value, style)
		return nil
	case AliasEvent:
		return e.writeAlias(ev.Target)
	case SequenceStartEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		return e.beginSequence(ev, resumeState)
	case MappingStartEvent:
		e.writeAnchorAndTag(ev.Anchor, ev.Tag)
		return e.beginMapping(ev, resumeState)
	}
	return &EventSequenceError{Got: ev.Type, Expected: "scalar, alias, sequence-start, or mapping-start"}
}

// RenderNode drives one complete document from a pre-built Node tree
// through the same Emit state machine the event-stream mode uses: it
// flattens the tree into Events rather than maintaining a second
// tree-walking renderer, which is what keeps the two emission modes
// byte-identical by construction.
func (e *Emitter) RenderNode(root *Node) error {
	if err := e.Emit(Event{Type: StreamStartEvent}); err != nil {
		return err
	}
	if err := e.Emit(Event{Type: DocumentStartEvent}); err != nil {
		return err
	}
	if err := e.renderNode(root); err != nil {
		return err
	}
	if err := e.Emit(Event{Type: DocumentEndEvent}); err != nil {
		return err
	}
	return e.Emit(Event{Type: StreamEndEvent})
}

func (e *Emitter) renderNode(n *Node) error {
	if n == nil {
		return e.Emit(Event{Type: ScalarEvent, Value: "null", PlainImplicit: true})
	}
	switch n.Kind {
	case ScalarNode:
		return e.Emit(Event{
			Type: ScalarEvent, Anchor: n.Anchor, Tag: n.Tag, Value: n.Value,
			ScalarStyle: n.ScalarStyle, PlainImplicit: n.Tag == "", QuotedImplicit: n.Tag == "",
			HeadComment: n.HeadComment, LineComment: n.LineComment, FootComment: n.FootComment,
		})
	case AliasNode:
		return e.Emit(Event{Type: AliasEvent, Target: n.Alias})
	case SequenceNode:
		if err := e.Emit(Event{Type: SequenceStartEvent, Anchor: n.Anchor, Tag: n.Tag, SequenceStyle: n.SequenceStyle}); err != nil {
			return err
		}
		for _, c := range n.Content {
			if err := e.renderNode(c); err != nil {
				return err
			}
		}
		return e.Emit(Event{Type: SequenceEndEvent})
	case MappingNode:
		if err := e.Emit(Event{Type: MappingStartEvent, Anchor: n.Anchor, Tag: n.Tag, MappingStyle: n.MappingStyle}); err != nil {
			return err
		}
		pairs := n.Content
		if e.cfg.sortKeys {
			pairs = sortMappingPairs(pairs)
		}
		for _, c := range pairs {
			if err := e.renderNode(c); err != nil {
				return err
			}
		}
		return e.Emit(Event{Type: MappingEndEvent})
	}
	return fmt.Errorf("atomcore: unknown node kind %d", n.Kind)
}

// sortMappingPairs reorders a flat [key, value, key, value, ...] content
// slice by rendered key text, preserving key/value adjacency.
func sortMappingPairs(content []*Node) []*Node {
	n := len(content) / 2
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = content[2*i].Value
	}
	order := sortMappingOrder(keys)
	out := make([]*Node, 0, len(content))
	for _, i := range order {
		out = append(out, content[2*i], content[2*i+1])
	}
	return out
}
