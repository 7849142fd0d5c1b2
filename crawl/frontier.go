// Package crawl — BFS frontier with deduplication.
// Maintains a visited set so the same URL is never processed twice.
package crawl

// Frontier is a BFS queue with URL deduplication.
type Frontier struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		visited: make(map[string]bool),
	}
}

// Add enqueues a URL if it hasn't been seen before.
func (f *Frontier) Add(url string) {
	if f.visited[url] {
		return
	}
	f.visited[url] = true
	f.items = append(f.items, url)
}

// HasNext returns true if there are unprocessed URLs.
func (f *Frontier) HasNext() bool {
	return f.idx < len(f.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (f *Frontier) Next() string {
	url := f.items[f.idx]
	f.idx++
	return url
}

// Visited returns the total number of unique URLs seen.
func (f *Frontier) Visited() int {
	return len(f.visited)
}

// All returns all discovered URLs in BFS order.
func (f *Frontier) All() []string {
	return f.items
}
