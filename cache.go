package patentsource

import "github.com/beevik/etree"

// documentCache memoizes the most recent parse. It holds exactly one entry:
// a fetch for the same container id as the previous fetch returns the cached
// tree, any other id replaces it. Sequential container scans therefore parse
// each container once; there is no LRU chain and no concurrency protection.
// Each data source owns its own cache so independent scans never share one.
type documentCache struct {
	cachedID   int
	cached     *etree.Document
	parseCount int
}

func newDocumentCache() *documentCache {
	return &documentCache{cachedID: -1}
}

// fetch returns the parsed document for the container with the given id,
// parsing data only on a cache miss.
func (c *documentCache) fetch(id int, data []byte) (*etree.Document, error) {
	if id == c.cachedID && c.cached != nil {
		return c.cached, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, ErrParseContainer(id, err)
	}
	c.cached = doc
	c.cachedID = id
	c.parseCount++
	return doc, nil
}

// parses reports how many cache misses have been served. Exposed through
// DataSource.ParseCount for cache-efficiency diagnostics.
func (c *documentCache) parses() int {
	return c.parseCount
}

func (c *documentCache) release() {
	c.cached = nil
	c.cachedID = -1
}
