// Package weekdays holds the days of the week as a flag set.
// The types are generated from weekdays.yaml.
package weekdays

//go:generate go run github.com/rogpeppe/flagset/cmd/flaggen generate weekdays.yaml
