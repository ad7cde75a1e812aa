// Package selfcheck holds the reference behaviour suites for the containers,
// written against harness so they can run from a plain binary.
package selfcheck

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-crzds/harness"
)

var ErrUnknownSuite = errors.New("selfcheck: unknown suite")

type Suite struct {
	Name string
	Run  func(h *harness.Harness)
}

// Suites lists every suite in the order Run uses when given no names.
var Suites = []Suite{
	{Name: "seq", Run: Sequence},
	{Name: "hashmap", Run: HashMap},
	{Name: "strbuild", Run: StringBuilder},
	{Name: "strview", Run: StringView},
}

func Lookup(name string) (Suite, bool) {
	for _, s := range Suites {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

// Run runs the named suites, or all of them if names is empty. Unknown names
// are rejected before anything runs.
func Run(h *harness.Harness, names ...string) error {
	selected := Suites
	if len(names) > 0 {
		selected = make([]Suite, 0, len(names))
		for _, name := range names {
			s, ok := Lookup(name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownSuite, name)
			}
			selected = append(selected, s)
		}
	}
	for _, s := range selected {
		s.Run(h)
		h.BeforeEach(nil)
		h.AfterEach(nil)
	}
	return nil
}
