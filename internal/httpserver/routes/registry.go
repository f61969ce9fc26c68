package routes

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

// MountFunc attaches one group of routes to r.
type MountFunc func(r chi.Router, d deps.Deps)

type group struct {
	name  string
	mount MountFunc
}

// groups is filled by the init functions of this package's route files.
var groups []group

// Register adds a named route group. Names must be unique.
func Register(name string, mount MountFunc) {
	for _, g := range groups {
		if g.name == name {
			panic(fmt.Sprintf("routes: group %q registered twice", name))
		}
	}
	groups = append(groups, group{name: name, mount: mount})
}

// Names lists the registered groups in registration order.
func Names() []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.name)
	}
	return names
}

// Mount attaches every registered group to r. Each group gets its own
// chi.Group, so middleware a group installs with Use stays inside it.
func Mount(r chi.Router, d deps.Deps) {
	for _, g := range groups {
		r.Group(func(r chi.Router) { g.mount(r, d) })
	}
}
