// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"go.yaml.in/atomcore/internal/testutil/assert"
)

func TestNewMemoryInput(t *testing.T) {
	in := NewMemoryInput([]byte("hello"))
	assert.Equalf(t, SourceMemory, in.Kind(), "Kind() = %v, want SourceMemory", in.Kind())
	assert.Equalf(t, 5, in.Size(), "Size() = %d, want 5", in.Size())
	assert.Equalf(t, "hello", string(in.Data()), "Data() = %q, want %q", in.Data(), "hello")
}

func TestNewFileInput(t *testing.T) {
	in := NewFileInput("config.yaml", []byte("a: 1"))
	assert.Equalf(t, SourceFile, in.Kind(), "Kind() = %v, want SourceFile", in.Kind())
	assert.Equalf(t, "config.yaml", in.Name(), "Name() = %q, want %q", in.Name(), "config.yaml")
}

func TestNewStreamInput(t *testing.T) {
	in := NewStreamInput([]byte("streamed"))
	assert.Equalf(t, SourceStream, in.Kind(), "Kind() = %v, want SourceStream", in.Kind())
	assert.Equalf(t, "", in.Name(), "Name() = %q, want empty for a stream input", in.Name())
}
