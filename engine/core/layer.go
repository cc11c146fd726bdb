package core

// Layer is a slice of per-frame behaviour attached to the engine. Layers are
// updated and rendered bottom-up and receive events top-down.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

// Pop removes the topmost layer.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.list)
	if n == 0 {
		return nil, false
	}
	l := ls.list[n-1]
	ls.list[n-1] = nil
	ls.list = ls.list[:n-1]
	return l, true
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

// ForEachReverse walks from the top; f returning true ends the walk.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if f(ls.list[i]) {
			return
		}
	}
}
