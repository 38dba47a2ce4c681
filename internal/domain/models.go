package domain

// Page is one logical page of the pager
type Page struct {
	Index int
	Title string
	Path  string // source file, empty for generated pages
	Body  string
}

// PagerStatus is a snapshot of the paging engine for display
type PagerStatus struct {
	CurrentPage int
	PageCount   int
	Circular    bool
	Autoplay    bool
	State       string
}
