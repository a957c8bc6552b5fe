// Copyright 2025 The atomcore Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import "sort"

// resolveSequenceStyle decides flow vs block for a sequence, honoring
// canonical/JSON mode and the FlowSimpleCollections knob the way the
// teacher's checkEmptySequence/analyzeEvent pairing does. parentInFlow and
// empty force flow regardless of what was requested: a sequence nested
// directly inside a flow collection can't be rendered in block form, and an
// empty sequence has no block form to render at all.
func resolveSequenceStyle(requested SequenceStyle, allScalar, parentInFlow, empty bool, cfg Config) SequenceStyle {
	if cfg.forcesFlow() || cfg.canonical || parentInFlow || empty {
		return SequenceFlow
	}
	if requested == SequenceFlow {
		return SequenceFlow
	}
	if requested == SequenceBlock {
		return SequenceBlock
	}
	if cfg.flowSimpleCollections && allScalar {
		return SequenceFlow
	}
	return SequenceBlock
}

// resolveMappingStyle is the mapping equivalent of resolveSequenceStyle.
func resolveMappingStyle(requested MappingStyle, allScalarValues, parentInFlow, empty bool, cfg Config) MappingStyle {
	if cfg.forcesFlow() || cfg.canonical || parentInFlow || empty {
		return MappingFlow
	}
	if requested == MappingFlow {
		return MappingFlow
	}
	if requested == MappingBlock {
		return MappingBlock
	}
	if cfg.flowSimpleCollections && allScalarValues {
		return MappingFlow
	}
	return MappingBlock
}

// sequenceIndentDelta returns how many columns a sequence item adds to
// the parent indent: cfg.Indent() normally, or 0 when
// CompactSequenceIndent folds the "- " into the item's own column, per
// the teacher's increaseIndentCompact.
func sequenceIndentDelta(cfg Config) int {
	if cfg.compactSequenceIndent {
		return 0
	}
	return cfg.bestIndent
}

// writeBlockSequenceItemPrologue writes the indent and the "-" indicator
// that precede a block sequence item. Compact indentation only changes the
// indent column the caller passes in; the "-" is always written.
func writeBlockSequenceItemPrologue(w *writerState, indent int, cfg Config) {
	w.writeIndent(indent, cfg.lineBreak)
	w.writeIndicator("-", true, false, true)
}

// writeFlowSequenceItemPrologue writes the separating "," (if not the
// first item) and opening "[" (if the first item).
func writeFlowSequenceItemPrologue(w *writerState, first bool, indent int, cfg Config) {
	if first {
		w.writeIndicator("[", true, true, false)
		return
	}
	w.writeIndicator(",", false, false, false)
	if cfg.canonical {
		w.writeIndent(indent, cfg.lineBreak)
	} else {
		w.writeByte(' ')
		w.set(wfWhitespace)
	}
}

// writeFlowSequenceEpilogue writes the closing "]".
func writeFlowSequenceEpilogue(w *writerState, indent int, cfg Config, empty bool) {
	if cfg.canonical && !empty {
		w.writeIndicator(",", false, false, false)
		w.writeIndent(indent, cfg.lineBreak)
	}
	w.writeIndicator("]", false, false, false)
}

// writeBlockMappingKeyPrologue writes the indent and, for a non-simple
// key, the explicit "?" key indicator.
func writeBlockMappingKeyPrologue(w *writerState, indent int, simple bool, cfg Config) {
	w.writeIndent(indent, cfg.lineBreak)
	if !simple {
		w.writeIndicator("?", true, true, true)
	}
}

// writeBlockMappingValuePrologue writes the ":" value indicator,
// preceded by the indent again when the key was not simple.
func writeBlockMappingValuePrologue(w *writerState, indent int, simple bool, cfg Config) {
	if !simple {
		w.writeIndent(indent, cfg.lineBreak)
	}
	w.writeIndicator(":", false, false, true)
}

// writeFlowMappingKeyPrologue is the flow-mode equivalent of
// writeBlockMappingKeyPrologue.
func writeFlowMappingKeyPrologue(w *writerState, first bool, indent int, simple bool, cfg Config) {
	if first {
		w.writeIndicator("{", true, true, false)
	} else {
		w.writeIndicator(",", false, false, false)
		if cfg.canonical {
			w.writeIndent(indent, cfg.lineBreak)
		} else {
			w.writeByte(' ')
			w.set(wfWhitespace)
		}
	}
	if !simple {
		w.writeIndicator("?", true, true, false)
	}
}

// writeFlowMappingValuePrologue writes the ":" separating a flow
// mapping's key from its value.
func writeFlowMappingValuePrologue(w *writerState, indent int, simple bool, cfg Config) {
	if !simple {
		w.writeIndent(indent, cfg.lineBreak)
	}
	w.writeIndicator(":", false, false, false)
}

// writeFlowMappingEpilogue writes the closing "}".
func writeFlowMappingEpilogue(w *writerState, indent int, cfg Config, empty bool) {
	if cfg.canonical && !empty {
		w.writeIndicator(",", false, false, false)
		w.writeIndent(indent, cfg.lineBreak)
	}
	w.writeIndicator("}", false, false, false)
}

// sortableKeys implements sort.Interface over a slice of rendered mapping
// keys, used when Config.SortKeys() is set. Keys compare as plain strings
// (byte-wise); numeric-looking keys are not compared by value, so "10"
// sorts before "9".
type sortableKeys struct {
	keys []string
	idx  []int
}

func newSortableKeys(keys []string) *sortableKeys {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	return &sortableKeys{keys: keys, idx: idx}
}

func (s *sortableKeys) Len() int      { return len(s.idx) }
func (s *sortableKeys) Swap(i, j int) { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }
func (s *sortableKeys) Less(i, j int) bool {
	return s.keys[s.idx[i]] < s.keys[s.idx[j]]
}

// sortMappingOrder returns a permutation of [0, len(keys)) that renders
// keys in sorted order, for use when Config.SortKeys() is set.
func sortMappingOrder(keys []string) []int {
	sk := newSortableKeys(keys)
	sort.Stable(sk)
	return sk.idx
}
