// Package squares holds the squares of a chess board as a flag set
// filling a whole 64-bit word. The types are generated from
// squares.yaml.
package squares

//go:generate go run github.com/rogpeppe/flagset/cmd/flaggen generate squares.yaml
