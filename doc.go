// Package flagset holds the runtime side of flag sets: closed
// domains of named items together with a set type that stores any
// subset of the domain as a single fixed-width word.
//
// Set and item types are normally generated by the flaggen command
// (see github.com/rogpeppe/flagset/cmd/flaggen) from a small YAML
// declaration. The generated code depends on this package for the
// 128-bit word type, the generic helpers below and the serialization
// adapters. Domains can also be built at run time with the
// github.com/rogpeppe/flagset/domain package.
//
// Items are numbered from zero in declaration order; item i is
// represented in a set by the bit 1<<i. Iteration always visits items
// in declaration order.
package flagset
