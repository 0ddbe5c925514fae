package adt

// IsConcrete reports whether no free type variables remain in t. For a
// function type, each mapping's own bindings are substituted with
// NeverType first, so that parameter variables (bound) are distinguished
// from genuinely free ones (§4.1).
func IsConcrete(t Type) bool {
	if fn, ok := t.(Func); ok {
		for _, m := range fn.Mappings {
			body := m.Result
			for _, b := range m.Bindings {
				body = Substitute(body, b, NeverType)
			}
			if hasFreeVar(body) {
				return false
			}
		}
		return true
	}
	return !hasFreeVar(t)
}

func hasFreeVar(t Type) bool {
	switch x := t.(type) {
	case *Var:
		return true
	case Union:
		for _, m := range x.Members {
			if hasFreeVar(m) {
				return true
			}
		}
	case Applied:
		if hasFreeVar(x.Recv) {
			return true
		}
		for _, a := range x.Args {
			if hasFreeVar(a) {
				return true
			}
		}
	case Func:
		return !IsConcrete(x)
	case Conditional:
		for _, b := range x.Branches {
			if hasFreeVar(b.Result) {
				return true
			}
		}
	}
	return false
}

// DoesHalt is the tri-valued termination oracle of §4.1.
//
// Reduce(t) signature-equal to NeverType means the
// definition's value can never be produced, so DoesHalt reports false
// (diverges). A never occurring elsewhere in the structure (inside a
// function result, an applied-type argument, or nested in one arm of a
// union) means divergence is only possible along one path, so DoesHalt
// reports null (unknown). Otherwise DoesHalt reports true.
func DoesHalt(t Type) *bool {
	no := false
	yes := true

	reduced := Reduce(t)
	if Signature(reduced) == Signature(NeverType) {
		return &no
	}
	if containsNever(reduced) {
		return nil
	}
	return &yes
}

func containsNever(t Type) bool {
	switch x := t.(type) {
	case Prim:
		return x.K == BottomKind
	case Union:
		for _, m := range x.Members {
			if containsNever(m) {
				return true
			}
		}
	case Applied:
		if containsNever(x.Recv) {
			return true
		}
		for _, a := range x.Args {
			if containsNever(a) {
				return true
			}
		}
	case Func:
		for _, m := range x.Mappings {
			if containsNever(m.Result) {
				return true
			}
		}
	case Conditional:
		for _, b := range x.Branches {
			if containsNever(b.Result) {
				return true
			}
		}
	}
	return false
}

// IsValid reports whether t contains no ErrType anywhere in its
// structure.
func IsValid(t Type) bool {
	return !containsError(t)
}

func containsError(t Type) bool {
	switch x := t.(type) {
	case ErrType:
		return true
	case Union:
		for _, m := range x.Members {
			if containsError(m) {
				return true
			}
		}
	case Applied:
		if containsError(x.Recv) {
			return true
		}
		for _, a := range x.Args {
			if containsError(a) {
				return true
			}
		}
	case Func:
		for _, m := range x.Mappings {
			if containsError(m.Result) {
				return true
			}
		}
	case Conditional:
		for _, b := range x.Branches {
			if containsError(b.Result) {
				return true
			}
		}
	}
	return false
}
