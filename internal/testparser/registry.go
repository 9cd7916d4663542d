package testparser

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Registry maps input format names to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry with all built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}
	for _, p := range []Parser{&GoParser{}, &JSONParser{}} {
		r.RegisterParser(p.Name(), p)
	}
	return r
}

// GetParser returns the parser for the given format name, or nil if there is none.
func (r *Registry) GetParser(name string) Parser {
	return r.parsers[strings.ToLower(name)]
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.parsers)
	sort.Strings(names)
	return names
}

// RegisterParser adds a parser under a format name.
func (r *Registry) RegisterParser(name string, parser Parser) {
	r.parsers[strings.ToLower(name)] = parser
}
