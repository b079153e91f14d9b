// Package textproc builds immutable text-processing pipelines.
//
// A pipeline is a Processor, a plain func(string) string. Decorators such as
// UpperCase, Trim and ReplaceSpaces take the inner Processor and return a new
// one that runs the inner stage first and then applies its own
// transformation, so the outermost decorator is the last one to touch the text:
//
//	p := textproc.Trim(textproc.ReplaceSpaces(textproc.Identity()))
//	p.Process("  a b  ") // "__a_b__": the spaces are gone before Trim runs
//
//	p = textproc.ReplaceSpaces(textproc.Trim(textproc.Identity()))
//	p.Process("  a b  ") // "a_b"
//
// Every Processor is a pure, total function: no state, no I/O, any input
// (including "") yields a defined output. Pipelines can therefore be shared
// freely between goroutines.
package textproc
