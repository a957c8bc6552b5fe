// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"go.yaml.in/atomcore/internal/testutil/assert"
)

func newTestEmitter(out *[]byte, opts ...Option) *Emitter {
	return NewEmitter(sinkTo(out), opts...)
}

func TestEmitterRenderScalarNode(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	err := e.RenderNode(&Node{Kind: ScalarNode, Value: "hello"})
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	assert.Equalf(t, "hello\n", string(out), "out = %q, want %q", out, "hello\n")
}

func TestEmitterRenderBlockSequence(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{
		Kind: SequenceNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "a"},
			{Kind: ScalarNode, Value: "b"},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	assert.Equalf(t, "- a\n- b\n", string(out), "out = %q, want %q", out, "- a\n- b\n")
}

func TestEmitterRenderBlockMapping(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "key"},
			{Kind: ScalarNode, Value: "value"},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	assert.Equalf(t, "key: value\n", string(out), "out = %q, want %q", out, "key: value\n")
}

func TestEmitterRenderNestedSequenceRestoresIndent(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "items"},
			{Kind: SequenceNode, Content: []*Node{
				{Kind: ScalarNode, Value: "x"},
			}},
			{Kind: ScalarNode, Value: "after"},
			{Kind: ScalarNode, Value: "done"},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := "items:\n  - x\nafter: done\n"
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterEventStreamDirectly(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	events := []Event{
		{Type: StreamStartEvent},
		{Type: DocumentStartEvent},
		{Type: ScalarEvent, Value: "x", PlainImplicit: true},
		{Type: DocumentEndEvent},
		{Type: StreamEndEvent},
	}
	for _, ev := range events {
		assert.IsNilf(t, e.Emit(ev), "Emit(%v) error, want nil", ev.Type)
	}
	assert.Equalf(t, "x\n", string(out), "out = %q, want %q", out, "x\n")
}

func TestEmitterRejectsUnexpectedEvent(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	err := e.Emit(Event{Type: ScalarEvent})
	assert.IsNotNilf(t, err, "Emit(scalar) before stream-start: error = nil, want non-nil")
}

func TestEmitterSortKeys(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out, WithSortKeys(true))
	root := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "b"}, {Kind: ScalarNode, Value: "2"},
			{Kind: ScalarNode, Value: "a"}, {Kind: ScalarNode, Value: "1"},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := "a: 1\nb: 2\n"
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterJSONOnelineMapping(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out, WithMode(ModeJSONOneline))
	root := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "a", ScalarStyle: ScalarPlain},
			{Kind: ScalarNode, Value: "1", ScalarStyle: ScalarPlain},
			{Kind: ScalarNode, Value: "b", ScalarStyle: ScalarPlain},
			{Kind: ScalarNode, Value: "2", ScalarStyle: ScalarPlain},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := `{"a": 1, "b": 2}`
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterForceFlowModeRendersSequenceInline(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out, WithMode(ModeFlow))
	root := &Node{
		Kind: SequenceNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "1"},
			{Kind: ScalarNode, Value: "2"},
			{Kind: ScalarNode, Value: "3"},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := "[1, 2, 3]\n"
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterRenderEmptyBlockSequenceRendersBrackets(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{Kind: SequenceNode}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	assert.Equalf(t, "[]\n", string(out), "out = %q, want %q", out, "[]\n")
}

func TestEmitterRenderEmptyBlockMappingRendersBraces(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{Kind: MappingNode}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	assert.Equalf(t, "{}\n", string(out), "out = %q, want %q", out, "{}\n")
}

func TestEmitterRenderEmptyNestedSequenceRendersBrackets(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "items"},
			{Kind: SequenceNode},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := "items: []\n"
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterRenderBlockSequenceNestedInFlowMappingUpgradesToFlow(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	root := &Node{
		Kind:         MappingNode,
		MappingStyle: MappingFlow,
		Content: []*Node{
			{Kind: ScalarNode, Value: "a"},
			{Kind: SequenceNode, Content: []*Node{
				{Kind: ScalarNode, Value: "1"},
				{Kind: ScalarNode, Value: "2"},
			}},
		},
	}
	err := e.RenderNode(root)
	assert.IsNilf(t, err, "RenderNode() error = %v, want nil", err)
	want := "{a: [1, 2]}\n"
	assert.Equalf(t, want, string(out), "out = %q, want %q", out, want)
}

func TestEmitterJSONModeRejectsAlias(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out, WithMode(ModeJSON))
	err := e.RenderNode(&Node{Kind: AliasNode, Alias: "x"})
	assert.IsNotNilf(t, err, "RenderNode(alias) in JSON mode: error = nil, want non-nil")
}

func TestEmitterPushPopSingleAssignment(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	e.state = stateDocumentContent
	e.indent = -1
	e.push(stateDocumentEnd, 2)
	assert.Equalf(t, 1, len(e.stack), "stack depth after push = %d, want 1", len(e.stack))
	assert.Equalf(t, 2, e.indent, "indent after push = %d, want 2", e.indent)

	ok := e.pop()
	assert.Truef(t, ok, "pop() = false, want true")
	assert.Equalf(t, 0, len(e.stack), "stack depth after pop = %d, want 0", len(e.stack))
	assert.Equalf(t, stateDocumentContent, e.state, "state after pop = %v, want stateDocumentContent", e.state)
	assert.Equalf(t, -1, e.indent, "indent after pop = %d, want -1", e.indent)
}

func TestEmitterPopUnderflow(t *testing.T) {
	var out []byte
	e := newTestEmitter(&out)
	ok := e.pop()
	assert.Truef(t, !ok, "pop() on an empty stack = true, want false")
}
