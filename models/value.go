// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the variant held by a [Value].
type ValueKind string

const (
	ValueNat   ValueKind = "Nat"
	ValueInt   ValueKind = "Int"
	ValueText  ValueKind = "Text"
	ValueBlob  ValueKind = "Blob"
	ValueArray ValueKind = "Array"
	ValueMap   ValueKind = "Map"
)

// Value is the ICRC-3 generic block value. Exactly one payload field is
// meaningful, selected by Kind.
//
// JSON form: {"Nat": "5"}, {"Int": "-3"}, {"Text": "x"}, {"Blob": "<base64>"},
// {"Array": [...]}, {"Map": [["key", {...}], ...]}.
type Value struct {
	Kind  ValueKind
	Nat   uint64
	Int   int64
	Text  string
	Blob  []byte
	Array []Value
	Map   []ValueEntry
}

// ValueEntry is one key/value pair of a Map value. Order is preserved.
type ValueEntry struct {
	Key   string
	Value Value
}

// NatValue builds a Nat value.
func NatValue(n uint64) Value { return Value{Kind: ValueNat, Nat: n} }

// IntValue builds an Int value.
func IntValue(i int64) Value { return Value{Kind: ValueInt, Int: i} }

// TextValue builds a Text value.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// BlobValue builds a Blob value.
func BlobValue(b []byte) Value { return Value{Kind: ValueBlob, Blob: b} }

// ArrayValue builds an Array value.
func ArrayValue(items ...Value) Value { return Value{Kind: ValueArray, Array: items} }

// MapValue builds a Map value.
func MapValue(entries ...ValueEntry) Value { return Value{Kind: ValueMap, Map: entries} }

// Lookup returns the value stored under key in a Map value.
func (v Value) Lookup(key string) (Value, bool) {
	if v.Kind != ValueMap {
		return Value{}, false
	}
	for _, e := range v.Map {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON implements [json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind {
	case ValueNat:
		payload = strconv.FormatUint(v.Nat, 10)
	case ValueInt:
		payload = strconv.FormatInt(v.Int, 10)
	case ValueText:
		payload = v.Text
	case ValueBlob:
		payload = v.Blob
	case ValueArray:
		items := v.Array
		if items == nil {
			items = []Value{}
		}
		payload = items
	case ValueMap:
		entries := make([][2]any, 0, len(v.Map))
		for _, e := range v.Map {
			entries = append(entries, [2]any{e.Key, e.Value})
		}
		payload = entries
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %q", v.Kind)
	}

	return json.Marshal(map[ValueKind]any{v.Kind: payload})
}

// UnmarshalJSON implements [json.Unmarshaler]. It rejects anything that is not
// exactly one known variant.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw map[ValueKind]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("value must have exactly one variant, got %d", len(raw))
	}

	for kind, payload := range raw {
		out := Value{Kind: kind}
		switch kind {
		case ValueNat:
			var n Nat
			if err := json.Unmarshal(payload, &n); err != nil {
				return fmt.Errorf("decode Nat: %w", err)
			}
			out.Nat = uint64(n)
		case ValueInt:
			var s json.Number
			if err := json.Unmarshal(payload, &s); err != nil {
				var str string
				if err2 := json.Unmarshal(payload, &str); err2 != nil {
					return fmt.Errorf("decode Int: %w", err)
				}
				s = json.Number(str)
			}
			i, err := strconv.ParseInt(s.String(), 10, 64)
			if err != nil {
				return fmt.Errorf("decode Int: %w", err)
			}
			out.Int = i
		case ValueText:
			if err := json.Unmarshal(payload, &out.Text); err != nil {
				return fmt.Errorf("decode Text: %w", err)
			}
		case ValueBlob:
			if err := json.Unmarshal(payload, &out.Blob); err != nil {
				return fmt.Errorf("decode Blob: %w", err)
			}
		case ValueArray:
			if err := json.Unmarshal(payload, &out.Array); err != nil {
				return fmt.Errorf("decode Array: %w", err)
			}
		case ValueMap:
			var entries []json.RawMessage
			if err := json.Unmarshal(payload, &entries); err != nil {
				return fmt.Errorf("decode Map: %w", err)
			}
			out.Map = make([]ValueEntry, 0, len(entries))
			for i, rawEntry := range entries {
				var pair []json.RawMessage
				if err := json.Unmarshal(rawEntry, &pair); err != nil || len(pair) != 2 {
					return fmt.Errorf("decode Map entry %d: want [key, value]", i)
				}
				var entry ValueEntry
				if err := json.Unmarshal(pair[0], &entry.Key); err != nil {
					return fmt.Errorf("decode Map key %d: %w", i, err)
				}
				if err := json.Unmarshal(pair[1], &entry.Value); err != nil {
					return fmt.Errorf("decode Map value %q: %w", entry.Key, err)
				}
				out.Map = append(out.Map, entry)
			}
		default:
			return fmt.Errorf("unknown value variant %q", kind)
		}
		*v = out
	}

	return nil
}
