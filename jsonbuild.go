// Package jsonbuild builds JSON documents incrementally from path entries.
//
// A Builder owns one mutable document. Put writes a value at a dotted path
// ("$.user.firstName" or just "user.firstName"), creating intermediate
// containers on demand; a segment carrying the "[*]" marker appends to an
// array instead of overwriting a key. Build materializes the document
// through a pluggable codec.
//
//	node, err := jsonbuild.New().
//		SilentPut("$.user.firstName", "John").
//		SilentPut("$.user.friends[*]", "Marco").
//		Build()
package jsonbuild

import (
	"errors"
	"fmt"
	"log/slog"
)

// Common errors. BuildError wraps these for anything that fails inside a
// builder operation.
var (
	ErrInvalidJSON = errors.New("invalid json document")
	ErrDecode      = errors.New("decode failed")
	ErrEncode      = errors.New("encode failed")
	ErrNotFound    = errors.New("path not found in document")
)

// emptyJSON is the text form of a fresh document.
const emptyJSON = "{}"

// BuildError is the unified error kind surfaced by Put, Build, and
// BuildAsMap.
type BuildError struct {
	Op   string
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsonbuild: %s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("jsonbuild: %s: %v", e.Op, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Builder accumulates path entries into one document. It is not safe for
// concurrent use; every operation runs to completion before returning.
type Builder struct {
	doc   *Node
	codec Codec
	log   *slog.Logger
}

// New returns a builder over an empty document using the default codec.
func New() *Builder {
	return NewWithCodec(defaultCodec)
}

// NewWithCodec returns a builder whose materialization and embedded-JSON
// decoding run through the given codec. The codec never affects the
// mutation algorithm itself.
func NewWithCodec(codec Codec) *Builder {
	return &Builder{doc: newObject(), codec: codec, log: slog.Default()}
}

// BuildEmpty returns a fresh, empty materialized document, independent of
// any builder.
func BuildEmpty() *Node {
	n, _ := defaultCodec.Decode([]byte(emptyJSON))
	return n
}

// Put writes value at path and returns the builder for chaining. A string
// value containing embedded JSON object text is decoded and stored as a
// structured subtree; a generic mapping (such as BuildAsMap output) is
// re-encoded as an object subtree; nil becomes an explicit null node.
// The returned error is always a *BuildError.
func (b *Builder) Put(path string, value any) (*Builder, error) {
	segs := normalizePath(path)
	if len(segs) == 0 {
		return b, nil
	}
	leaf, err := leafNode(classify(value), value, b.codec)
	if err != nil {
		return b, &BuildError{Op: "put", Path: path, Err: err}
	}
	putNode(b.doc, segs, leaf)
	return b, nil
}

// PutFunc evaluates fn exactly once and puts its result at path.
func (b *Builder) PutFunc(path string, fn func() any) (*Builder, error) {
	return b.Put(path, fn())
}

// SilentPut is Put with the error swallowed and logged; the builder comes
// back unchanged when the put fails.
func (b *Builder) SilentPut(path string, value any) *Builder {
	if _, err := b.Put(path, value); err != nil {
		b.log.Error("jsonbuild: put failed", "path", path, "error", err)
	}
	return b
}

// SilentPutFunc is PutFunc with the error swallowed and logged.
func (b *Builder) SilentPutFunc(path string, fn func() any) *Builder {
	return b.SilentPut(path, fn())
}

// Delete removes the entry at path. A path that does not resolve is
// absorbed; Delete never fails.
func (b *Builder) Delete(path string) *Builder {
	segs := normalizePath(path)
	if err := removeNode(b.doc, segs); err != nil {
		b.log.Debug("jsonbuild: delete ignored", "path", path, "error", err)
	}
	return b
}

// Build materializes the document by round-tripping it through the codec,
// so the result is detached from the builder's internal state. The
// document itself is left unchanged; Build may be called any number of
// times.
func (b *Builder) Build() (*Node, error) {
	data, err := b.codec.Encode(b.doc)
	if err != nil {
		return nil, &BuildError{Op: "build", Err: fmt.Errorf("%w: %v", ErrEncode, err)}
	}
	n, err := b.codec.Decode(data)
	if err != nil {
		return nil, &BuildError{Op: "build", Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	return n, nil
}

// BuildAsMap materializes the document as a generic nested mapping of
// maps, slices, and scalars.
func (b *Builder) BuildAsMap() (map[string]any, error) {
	n, err := b.Build()
	if err != nil {
		return nil, err
	}
	m, err := b.codec.ToMap(n)
	if err != nil {
		return nil, &BuildError{Op: "build", Err: fmt.Errorf("%w: %v", ErrEncode, err)}
	}
	return m, nil
}

// SilentBuild is Build with failures logged and replaced by an empty
// document.
func (b *Builder) SilentBuild() *Node {
	n, err := b.Build()
	if err != nil {
		b.log.Error("jsonbuild: build failed", "error", err)
		return newObject()
	}
	return n
}

// SilentBuildAsMap is BuildAsMap with failures logged and replaced by an
// empty mapping.
func (b *Builder) SilentBuildAsMap() map[string]any {
	m, err := b.BuildAsMap()
	if err != nil {
		b.log.Error("jsonbuild: build failed", "error", err)
		return map[string]any{}
	}
	return m
}
