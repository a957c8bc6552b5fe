//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

package atomcore

import "go.yaml.in/atomcore/internal/core"

// Option configures an Emitter. Re-exported from internal/core.
type Option = core.Option

// Re-export option constructors from internal/core.
var (
	WithMode                  = core.WithMode
	WithCanonical             = core.WithCanonical
	WithUnicode               = core.WithUnicode
	WithSortKeys              = core.WithSortKeys
	WithIndent                = core.WithIndent
	WithWidth                 = core.WithWidth
	WithLineBreak             = core.WithLineBreak
	WithVersionDirective      = core.WithVersionDirective
	WithTagDirectives         = core.WithTagDirectives
	WithDocStartMark          = core.WithDocStartMark
	WithDocEndMark            = core.WithDocEndMark
	WithCompactSequenceIndent = core.WithCompactSequenceIndent
	WithFlowSimpleCollections = core.WithFlowSimpleCollections
)

// Options combines multiple Options into a single Option, applied in
// order, the same combinator shape as the teacher's own Options helper.
func Options(opts ...Option) Option {
	return core.Options(opts...)
}

// Mode selects YAML or JSON output.
type Mode = core.Mode

const (
	ModeYAML            = core.ModeYAML
	ModeBlock           = core.ModeBlock
	ModeFlow            = core.ModeFlow
	ModeFlowOneline     = core.ModeFlowOneline
	ModeJSON            = core.ModeJSON
	ModeJSONTaggedPlain = core.ModeJSONTaggedPlain
	ModeJSONOneline     = core.ModeJSONOneline
)

// LineBreak selects the line break byte sequence written by the emitter.
type LineBreak = core.LineBreak

const (
	LineBreakLF   = core.LineBreakLF
	LineBreakCR   = core.LineBreakCR
	LineBreakCRLF = core.LineBreakCRLF
)

// Presence is a tri-state override for a preamble element: left to the
// emitter's own default, forced on, or forced off.
type Presence = core.Presence

const (
	PresenceAuto = core.PresenceAuto
	PresenceOn   = core.PresenceOn
	PresenceOff  = core.PresenceOff
)
