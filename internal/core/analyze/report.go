package analyze

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// Report is what analyzing one identifier produces on success (§4.4,
// §6.3): its type, and the accumulated tag/stdlib-name sets of everything
// reachable from it.
type Report struct {
	Type     adt.Type
	DefTypes map[string]bool
	StdUsage map[string]bool
}

func leaf(t adt.Type, tag string) Report {
	return Report{Type: t, DefTypes: set(tag), StdUsage: set()}
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// merge folds src's sets into dst in place and returns dst.
func merge(dst map[string]bool, src map[string]bool) map[string]bool {
	if dst == nil {
		dst = map[string]bool{}
	}
	for k := range src {
		dst[k] = true
	}
	return dst
}

// mergeInto combines own's tag/stdUsage sets with every child Report's
// sets, used by each node-kind handler to assemble its accumulated
// Report from its own tag plus its children's reports.
func mergeInto(t adt.Type, ownTag string, children ...Report) Report {
	defTypes := set(ownTag)
	stdUsage := set()
	for _, c := range children {
		defTypes = merge(defTypes, c.DefTypes)
		stdUsage = merge(stdUsage, c.StdUsage)
	}
	return Report{Type: t, DefTypes: defTypes, StdUsage: stdUsage}
}
