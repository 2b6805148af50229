package listener

// Group releases a set of handles together.
// The zero value is ready to use.
type Group struct {
	handles []*Handle
}

func (g *Group) Add(h *Handle) {
	g.handles = append(g.handles, h)
}

func (g *Group) Len() int {
	return len(g.handles)
}

// Release releases every handle, most recently added first, and empties the
// group. A handle that fails to deregister does not stop the rest.
func (g *Group) Release() {
	handles := g.handles
	g.handles = nil
	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Release()
	}
}
