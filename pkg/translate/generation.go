package translate

import "sync/atomic"

// Generation tags in-flight requests so that only the latest one is applied.
// Next starts a request; its result is applied only while IsCurrent holds.
type Generation struct {
	n atomic.Uint64
}

// Next invalidates every earlier token and returns a new one.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Invalidate drops every outstanding token without starting a request.
func (g *Generation) Invalidate() {
	g.n.Add(1)
}

func (g *Generation) IsCurrent(tok uint64) bool {
	return g.n.Load() == tok
}
