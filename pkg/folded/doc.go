// Package folded implements the line-oriented "folded stacks" text format.
//
// Each line holds one weighted stack: the frame names joined by a separator
// (semicolon by default) followed by a space and the weight:
//
//	main;foo;bar 10
//	main;foo;baz 5
//	main;qux 3
//
// Blank lines and lines starting with '#' are ignored. The weight is parsed
// as a floating-point literal after the last space on the line.
//
// The codec is layered entirely on top of the flame package's public API:
// Decode feeds stacks through Tree.Insert and Encode walks Tree.All. A parse
// failure is reported as a *LineError carrying the offending line number,
// and no partially merged tree is returned.
package folded
