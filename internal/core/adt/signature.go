package adt

import (
	"fmt"
	"strconv"
	"strings"
)

// Signature is the canonical, deterministic textual form of a type. Two
// types are considered equal for union deduplication iff their signatures
// match (§3.3, §4.1).
func Signature(t Type) string {
	switch x := t.(type) {
	case Prim:
		return x.K.String()
	case ArrayCtor:
		return "array"
	case *Var:
		return "var#" + varID(x)
	case Union:
		parts := make([]string, len(x.Members))
		for i, m := range x.Members {
			parts[i] = Signature(m)
		}
		return "(" + strings.Join(parts, "|") + ")"
	case Applied:
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			parts[i] = Signature(a)
		}
		return Signature(x.Recv) + "(" + strings.Join(parts, ",") + ")"
	case Func:
		parts := make([]string, len(x.Mappings))
		for i, m := range x.Mappings {
			parts[i] = mappingSignature(m)
		}
		return "func{" + strings.Join(parts, ";") + "}"
	case Conditional:
		parts := make([]string, len(x.Branches))
		for i, b := range x.Branches {
			parts[i] = branchSignature(b)
		}
		return "cond{" + strings.Join(parts, ";") + "}"
	case *Unresolved:
		return "unresolved#" + varID(x)
	case ErrType:
		return "error(" + x.Reason + ")"
	default:
		return fmt.Sprintf("<unknown %T>", t)
	}
}

func mappingSignature(m Mapping) string {
	parts := make([]string, len(m.Patterns))
	for i, p := range m.Patterns {
		parts[i] = patternSignature(p)
	}
	return strings.Join(parts, ",") + "->" + Signature(m.Result)
}

func branchSignature(b Branch) string {
	parts := make([]string, len(b.Predicates))
	for i, p := range b.Predicates {
		parts[i] = varID(p.Var) + ":" + patternSignature(p.Pattern)
	}
	return strings.Join(parts, "&") + "=>" + Signature(b.Result)
}

func patternSignature(p Pattern) string {
	switch x := p.(type) {
	case PrimPattern:
		return x.K.String()
	case ArrayCtorPattern:
		return "array"
	case AppliedPattern:
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			parts[i] = patternSignature(a)
		}
		return patternSignature(x.Recv) + "(" + strings.Join(parts, ",") + ")"
	case FuncPattern:
		return "func/" + strconv.Itoa(x.Arity)
	case VarPattern:
		return "_"
	default:
		return fmt.Sprintf("<unknown pattern %T>", p)
	}
}

// varID assigns a process-stable identity string to a *Var/*Unresolved by
// pointer address. It is used only inside signatures, never for equality
// comparisons between distinct types (those remain pointer identity).
func varID(p interface{}) string {
	return fmt.Sprintf("%p", p)
}
