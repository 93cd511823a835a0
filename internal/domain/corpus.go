package domain

// Corpus holds the documents being searched, keyed by unique name and kept
// in the order they were added.
type Corpus struct {
	names []string
	docs  map[string]Document
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docs: make(map[string]Document)}
}

// Add stores a document. A document with the same name replaces the
// previous one without changing its position.
func (c *Corpus) Add(doc Document) {
	if _, ok := c.docs[doc.Name]; !ok {
		c.names = append(c.names, doc.Name)
	}
	c.docs[doc.Name] = doc
}

// Get returns the document called name.
func (c *Corpus) Get(name string) (Document, bool) {
	d, ok := c.docs[name]
	return d, ok
}

// Names returns document names in insertion order.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}
