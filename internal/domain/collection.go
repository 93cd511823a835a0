package domain

import "sort"

// Collection is an ordered mapping from item id to its token sequence.
// Iteration follows insertion order; re-adding an id replaces its tokens
// in place.
type Collection struct {
	ids    []string
	tokens map[string][]string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{tokens: make(map[string][]string)}
}

// Add stores tokens under id.
func (c *Collection) Add(id string, tokens []string) {
	if _, ok := c.tokens[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.tokens[id] = tokens
}

// Len returns the number of items.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Each calls fn for every item in insertion order.
func (c *Collection) Each(fn func(id string, tokens []string)) {
	if c == nil {
		return
	}
	for _, id := range c.ids {
		fn(id, c.tokens[id])
	}
}

// Query is a set of normalized words.
type Query map[string]struct{}

// NewQuery builds a query from words, collapsing duplicates.
func NewQuery(words ...string) Query {
	q := make(Query, len(words))
	for _, w := range words {
		q[w] = struct{}{}
	}
	return q
}

// Has reports whether w is a query word.
func (q Query) Has(w string) bool {
	_, ok := q[w]
	return ok
}

// Words returns the query words in sorted order.
func (q Query) Words() []string {
	out := make([]string, 0, len(q))
	for w := range q {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
