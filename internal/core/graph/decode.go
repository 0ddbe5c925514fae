package graph

import (
	"encoding/json"
	"math"

	"github.com/AksoEo/akso-script-go/internal/akerrors"
)

// UnmarshalJSON decodes a Layer from the bit-compatible JSON-object shape
// of §6.1: a mapping from identifier to tagged definition node. A key
// beginning with "@" is rejected — form-value names may only be used as
// references, never as definition keys (§3.1).
func (l *Layer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return akerrors.New(akerrors.InvalidFormat, nil, "layer is not a JSON object: %v", err)
	}
	out := Layer{}
	for key, val := range raw {
		if len(key) > 0 && key[0] == '@' {
			return akerrors.New(akerrors.LeadingAtIdent, []string{key}, "%q: form-value names cannot be used as definition keys", key)
		}
		def, err := decodeDefinition(val)
		if err != nil {
			return akerrors.WithPath(err, key)
		}
		out[Name(key)] = def
	}
	*l = out
	return nil
}

type rawDef struct {
	T string          `json:"t"`
	V json.RawMessage `json:"v"`
	F json.RawMessage `json:"f"`
	A json.RawMessage `json:"a"`
	P json.RawMessage `json:"p"`
	B json.RawMessage `json:"b"`
	M json.RawMessage `json:"m"`
}

func decodeDefinition(data []byte) (*Definition, error) {
	var r rawDef
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, akerrors.New(akerrors.InvalidFormat, nil, "malformed definition: %v", err)
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	return &Definition{Node: node}, nil
}

func decodeNode(r rawDef) (Node, error) {
	switch r.T {
	case "u":
		return NullNode{}, nil

	case "b":
		var v bool
		if err := unmarshalField(r.V, &v, "b.v"); err != nil {
			return nil, err
		}
		return BoolNode{V: v}, nil

	case "n":
		var v float64
		if err := unmarshalField(r.V, &v, "n.v"); err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, akerrors.New(akerrors.InvalidFormat, nil, "n.v must be finite")
		}
		return NumNode{V: v}, nil

	case "s":
		var v string
		if err := unmarshalField(r.V, &v, "s.v"); err != nil {
			return nil, err
		}
		return StrNode{V: v}, nil

	case "m":
		var raw []json.RawMessage
		if err := unmarshalField(r.V, &raw, "m.v"); err != nil {
			return nil, err
		}
		lits := make([]Literal, len(raw))
		for i, item := range raw {
			lit, err := decodeLiteral(item)
			if err != nil {
				return nil, err
			}
			lits[i] = lit
		}
		return ArrayLitNode{V: lits}, nil

	case "l":
		ids, err := decodeIdentList(r.V, "l.v")
		if err != nil {
			return nil, err
		}
		return ListNode{V: ids}, nil

	case "c":
		var fname string
		if err := unmarshalField(r.F, &fname, "c.f"); err != nil {
			return nil, err
		}
		var args []Identifier
		if len(r.A) > 0 {
			a, err := decodeIdentList(r.A, "c.a")
			if err != nil {
				return nil, err
			}
			args = a
		}
		return CallNode{F: Name(fname), A: args}, nil

	case "f":
		var params []string
		if err := unmarshalField(r.P, &params, "f.p"); err != nil {
			return nil, err
		}
		var body Layer
		if err := json.Unmarshal(r.B, &body); err != nil {
			return nil, akerrors.WithPath(err, "f.b")
		}
		return FuncNode{P: params, B: body}, nil

	case "w":
		var raw []struct {
			C *string `json:"c"`
			V string  `json:"v"`
		}
		if err := unmarshalField(r.M, &raw, "w.m"); err != nil {
			return nil, err
		}
		cases := make([]SwitchCase, len(raw))
		for i, c := range raw {
			sc := SwitchCase{V: Name(c.V)}
			if c.C != nil {
				sc.HasC = true
				sc.C = Name(*c.C)
			}
			cases[i] = sc
		}
		return SwitchNode{M: cases}, nil

	default:
		return nil, akerrors.New(akerrors.UnknownDefType, nil, "unknown definition tag %q", r.T)
	}
}

func decodeLiteral(data []byte) (Literal, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, akerrors.New(akerrors.InvalidFormat, nil, "malformed literal: %v", err)
	}
	return literalFromAny(v)
}

func literalFromAny(v interface{}) (Literal, error) {
	switch x := v.(type) {
	case nil:
		return LitNull{}, nil
	case bool:
		return LitBool(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, akerrors.New(akerrors.InvalidFormat, nil, "literal number must be finite")
		}
		return LitNum(x), nil
	case string:
		return LitStr(x), nil
	case []interface{}:
		out := make(LitArray, len(x))
		for i, item := range x {
			lit, err := literalFromAny(item)
			if err != nil {
				return nil, err
			}
			out[i] = lit
		}
		return out, nil
	default:
		return nil, akerrors.New(akerrors.InvalidFormat, nil, "unsupported literal value %v", v)
	}
}

func decodeIdentList(data []byte, field string) ([]Identifier, error) {
	var names []string
	if err := unmarshalField(data, &names, field); err != nil {
		return nil, err
	}
	ids := make([]Identifier, len(names))
	for i, n := range names {
		ids[i] = Name(n)
	}
	return ids, nil
}

func unmarshalField(data []byte, dst interface{}, field string) error {
	if len(data) == 0 {
		return akerrors.New(akerrors.InvalidFormat, nil, "missing field %s", field)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return akerrors.New(akerrors.InvalidFormat, nil, "field %s: %v", field, err)
	}
	return nil
}
