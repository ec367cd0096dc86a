// Package vex compiles .jsx sources into plain JavaScript: every JSX
// element becomes a virtual-DOM constructor call and the helper imports
// those calls need are injected into the file.
package vex

import (
	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/printer"
	"github.com/vexlang/vex/transform"
)

// Options re-exports the transform configuration for callers of Compile.
type Options = transform.Options

// Compile parses src, rewrites its JSX elements and returns the resulting
// JavaScript together with a source map. A parse error still yields the
// best-effort output for whatever was recognized.
func Compile(path string, src []byte, opts *Options) ([]byte, *printer.SourceMap, error) {
	prog, err := parser.Parse(path, src)
	if prog == nil {
		return nil, nil, err
	}

	transform.Transform(prog, opts)

	out, sm := printer.Print(prog)
	return []byte(out), sm, err
}
