package analyze

import (
	"strings"

	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

// scope is a lookup position within a Stack, plus the privacy boundary
// (§4.4, §9) below which parent-scope names beginning with "_" are
// invisible. At the top level privacyBoundary is 0: nothing sits below
// index 0, so every name, private or not, is reachable. Entering a
// function body raises the boundary to the stack length just before the
// body's own two layers were pushed. Inside the body the boundary only
// grows — a doubly-nested function inherits its parent's hiding for free
// because its own boundary is always >= the parent's — and it is reset to
// 0 only when a definition found below it is analyzed (see at).
type scope struct {
	stack           graph.Stack
	ceiling         int
	privacyBoundary int
}

func topScope(stack graph.Stack) scope {
	return scope{stack: stack, ceiling: len(stack) - 1, privacyBoundary: 0}
}

// at rebases the scope's ceiling to ceiling, used when a definition's own
// references must be resolved starting at the layer it was found in, not
// the caller's. The privacy boundary is reset to 0 whenever the
// definition lives below the caller's own boundary: such a definition is
// not nested inside whatever function body the caller was elevated by, so
// nothing should be hidden from its own lexical position. A definition
// found at or above the caller's boundary keeps it unchanged, so a
// doubly-nested function still inherits its parent's hiding.
func (s scope) at(ceiling int) scope {
	boundary := s.privacyBoundary
	if ceiling < boundary {
		boundary = 0
	}
	return scope{stack: s.stack, ceiling: ceiling, privacyBoundary: boundary}
}

// pushed returns the child scope for a function body: two new layers on
// top, and a privacy boundary raised to just below them.
func (s scope) pushed(param, body graph.Layer) scope {
	stack := s.stack.Pushed(param, body)
	return scope{stack: stack, ceiling: len(stack) - 1, privacyBoundary: len(s.stack)}
}

func (s scope) lookup(id graph.Identifier) (*graph.Definition, int, bool) {
	name, isName := id.(graph.Name)
	private := isName && strings.HasPrefix(string(name), "_")
	for i := s.ceiling; i >= 0; i-- {
		if private && i < s.privacyBoundary {
			continue
		}
		if d, ok := s.stack[i][id]; ok {
			return d, i, true
		}
	}
	return nil, -1, false
}
