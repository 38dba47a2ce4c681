package eventbus

import "lazypager/internal/paging"

// PagerState is the read side of a paging engine
type PagerState interface {
	CurrentPage() int
	PageCount() int
}

// PagingObserver publishes settle-level paging notifications on the bus.
// Scroll notifications are too frequent and are not forwarded.
func PagingObserver(b EventBus, pager PagerState) paging.Observer {
	return paging.Observer{
		WillBeginDragging: func() {
			b.Publish(DragStartedEvent{FromPage: pager.CurrentPage()})
		},
		DidEndDecelerating: func(index int) {
			b.Publish(DeceleratedEvent{Index: index})
		},
		CurrentPageChanged: func(index int) {
			b.Publish(PageChangedEvent{Index: index, Count: pager.PageCount()})
		},
	}
}
