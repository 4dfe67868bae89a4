package flagset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotSequence is returned when decoding a set from
	// a value that is not a sequence of items.
	ErrNotSequence = errors.New("set value is not a sequence")

	// ErrUnknownItem is returned when decoding an item
	// name that is not part of the domain.
	ErrUnknownItem = errors.New("unknown item")
)

// Names returns the names of all the items produced by seq.
// The result is never nil, so that an empty set encodes as an
// empty sequence.
func Names[I fmt.Stringer](seq iter.Seq[I]) []string {
	names := []string{}
	for item := range seq {
		names = append(names, item.String())
	}
	return names
}

// MarshalJSON encodes the items produced by seq as a JSON array of
// item names.
func MarshalJSON[I fmt.Stringer](seq iter.Seq[I]) ([]byte, error) {
	return json.Marshal(Names(seq))
}

// UnmarshalJSON decodes data, which must hold a JSON array of item
// names, into *dst, replacing its previous contents. Names are
// looked up with parse. A JSON null is not a sequence and is
// rejected like any other non-array value.
func UnmarshalJSON[S Set[S, I], I Item[S]](dst *S, data []byte, parse func(string) (I, error)) error {
	names, err := DecodeJSONNames(data)
	if err != nil {
		return err
	}
	s, err := fold[S](names, parse)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// DecodeJSONNames decodes a JSON array of item names.
func DecodeJSONNames(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: got JSON %s", ErrNotSequence, jsonKind(data))
	}
	names := []string{}
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("cannot decode set items: %w", err)
	}
	return names, nil
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	return "number"
}

// MarshalYAML returns a value that encodes the items produced by seq
// as a YAML sequence of item names. It is suitable for returning from
// a yaml.Marshaler implementation.
func MarshalYAML[I fmt.Stringer](seq iter.Seq[I]) (any, error) {
	return Names(seq), nil
}

// UnmarshalYAML decodes n, which must be a YAML sequence of item
// names, into *dst, replacing its previous contents. Names are
// looked up with parse.
//
// Note that yaml.v3 does not call unmarshalers for null values,
// so a null field leaves the set unchanged when decoding a whole
// document. Passing a null node here directly is an error.
func UnmarshalYAML[S Set[S, I], I Item[S]](dst *S, n *yaml.Node, parse func(string) (I, error)) error {
	names, err := DecodeYAMLNames(n)
	if err != nil {
		return err
	}
	s, err := fold[S](names, parse)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// DecodeYAMLNames decodes a YAML sequence of item names.
func DecodeYAMLNames(n *yaml.Node) ([]string, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %w: got YAML %s", n.Line, ErrNotSequence, yamlKind(n))
	}
	names := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		c = resolveAlias(c)
		if c.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: set item must be a name, got YAML %s", c.Line, yamlKind(c))
		}
		names = append(names, c.Value)
	}
	return names, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.DocumentNode:
		return "document"
	case yaml.ScalarNode:
		return "scalar " + n.ShortTag()
	}
	return "alias"
}

func fold[S Set[S, I], I Item[S]](names []string, parse func(string) (I, error)) (S, error) {
	var s S
	for _, name := range names {
		item, err := parse(name)
		if err != nil {
			var zero S
			return zero, err
		}
		s = s.With(item.Set())
	}
	return s, nil
}
