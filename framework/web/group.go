package web

import (
	"net/http"
)

// Group wraps the App for mounting multiple handlers under a shared path prefix and middlewares.
type Group struct {
	app         *App
	prefixPath  string
	middlewares []Middleware
}

// NewGroup initializes a group of http handlers, with a bunch of middlewares.
func NewGroup(app *App, prefixPath string, mw ...Middleware) *Group {
	return &Group{
		app,
		prefixPath,
		mw,
	}
}

// Handle mounts handler for the verb and path under the group prefix, wrapped
// with the group middlewares followed by mw.
func (g *Group) Handle(verb string, path string, handler Handler, mw ...Middleware) {
	g.app.Handle(verb, g.prefixPath+path, handler, g.chain(mw)...)
}

// Post mounts a POST handler within the group.
func (g *Group) Post(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPost, path, handler, mw...)
}

// Get mounts a GET handler within the group.
func (g *Group) Get(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodGet, path, handler, mw...)
}

// Put mounts a PUT handler within the group.
func (g *Group) Put(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPut, path, handler, mw...)
}

// Delete mounts a DELETE handler within the group.
func (g *Group) Delete(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodDelete, path, handler, mw...)
}

// Patch mounts a PATCH handler within the group.
func (g *Group) Patch(path string, handler Handler, mw ...Middleware) {
	g.Handle(http.MethodPatch, path, handler, mw...)
}

// NewSubgroup initializes a subgroup, within a group, with a bunch of additional middlewares.
func (g *Group) NewSubgroup(prefixPath string, mw ...Middleware) *Group {
	return &Group{
		g.app,
		g.prefixPath + prefixPath,
		g.chain(mw),
	}
}

// chain returns a fresh slice so sibling subgroups never share a backing array.
func (g *Group) chain(mw []Middleware) []Middleware {
	middlewares := make([]Middleware, 0, len(g.middlewares)+len(mw))
	middlewares = append(middlewares, g.middlewares...)

	return append(middlewares, mw...)
}
