// Package elements holds the first seventy chemical elements as a
// flag set. The domain is too large for a 64-bit word, so the set
// type is based on flagset.Uint128.
package elements

//go:generate go run github.com/rogpeppe/flagset/cmd/flaggen generate elements.yaml
