package paging

// Observer receives paging notifications. Every handler is optional; nil handlers are skipped.
//
// For a user-driven page change the order is WillBeginDragging, DidScroll (zero or more),
// DidEndDragging, then WillBeginDecelerating and DidEndDecelerating when the drag carried momentum,
// and finally CurrentPageChanged if the settled page differs from the previous one.
type Observer struct {
	WillBeginDragging     func()
	DidScroll             func(position float64) // fractional page position along the axis
	DidEndDragging        func()
	WillBeginDecelerating func()
	DidEndDecelerating    func(index int)
	CurrentPageChanged    func(index int)
}

func (o Observer) willBeginDragging() {
	if o.WillBeginDragging != nil {
		o.WillBeginDragging()
	}
}

func (o Observer) didScroll(position float64) {
	if o.DidScroll != nil {
		o.DidScroll(position)
	}
}

func (o Observer) didEndDragging() {
	if o.DidEndDragging != nil {
		o.DidEndDragging()
	}
}

func (o Observer) willBeginDecelerating() {
	if o.WillBeginDecelerating != nil {
		o.WillBeginDecelerating()
	}
}

func (o Observer) didEndDecelerating(index int) {
	if o.DidEndDecelerating != nil {
		o.DidEndDecelerating(index)
	}
}

func (o Observer) currentPageChanged(index int) {
	if o.CurrentPageChanged != nil {
		o.CurrentPageChanged(index)
	}
}

// Chain returns an observer that calls every handler of a, then of b
func Chain(a, b Observer) Observer {
	return Observer{
		WillBeginDragging: func() {
			a.willBeginDragging()
			b.willBeginDragging()
		},
		DidScroll: func(position float64) {
			a.didScroll(position)
			b.didScroll(position)
		},
		DidEndDragging: func() {
			a.didEndDragging()
			b.didEndDragging()
		},
		WillBeginDecelerating: func() {
			a.willBeginDecelerating()
			b.willBeginDecelerating()
		},
		DidEndDecelerating: func(index int) {
			a.didEndDecelerating(index)
			b.didEndDecelerating(index)
		},
		CurrentPageChanged: func(index int) {
			a.currentPageChanged(index)
			b.currentPageChanged(index)
		},
	}
}
