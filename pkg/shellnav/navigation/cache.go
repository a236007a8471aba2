package navigation

import (
	"reflect"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
)

// Unloader is implemented by page content that holds resources which must be
// released when the frame's page cache evicts it.
type Unloader interface {
	Unload()
}

// cachedPage is content built for one page and parameter.
type cachedPage struct {
	page      Page
	parameter any
	content   any
}

// pageCache keeps built pages so history navigation can reuse them. Pages are
// ordered from least to most recently shown; parameters match with
// reflect.DeepEqual, the same rule Service.Navigate uses to suppress repeats.
type pageCache struct {
	pages    []cachedPage
	capacity int
}

func newPageCache() *pageCache {
	return newPageCacheWithSize(constants.DefaultPageCacheSize)
}

func newPageCacheWithSize(capacity int) *pageCache {
	return &pageCache{capacity: max(capacity, 0)}
}

func (c *pageCache) find(page Page, parameter any) int {
	for i, p := range c.pages {
		if p.page == page && reflect.DeepEqual(p.parameter, parameter) {
			return i
		}
	}
	return -1
}

// get returns the content built for page and parameter and marks it as the
// most recently shown.
func (c *pageCache) get(page Page, parameter any) (any, bool) {
	i := c.find(page, parameter)
	if i < 0 {
		return nil, false
	}
	return c.touch(i).content, true
}

func (c *pageCache) set(page Page, parameter any, content any) {
	if c.capacity == 0 {
		return
	}
	if i := c.find(page, parameter); i >= 0 {
		c.touch(i).content = content
		return
	}
	if len(c.pages) >= c.capacity {
		c.evictOldest()
	}
	c.pages = append(c.pages, cachedPage{page: page, parameter: parameter, content: content})
}

func (c *pageCache) resize(capacity int) {
	c.capacity = max(capacity, 0)
	for len(c.pages) > c.capacity {
		c.evictOldest()
	}
}

func (c *pageCache) len() int {
	return len(c.pages)
}

// touch moves the page at i to the most recently shown slot.
func (c *pageCache) touch(i int) *cachedPage {
	p := c.pages[i]
	c.pages = append(c.pages[:i], c.pages[i+1:]...)
	c.pages = append(c.pages, p)
	return &c.pages[len(c.pages)-1]
}

func (c *pageCache) evictOldest() {
	if len(c.pages) == 0 {
		return
	}
	oldest := c.pages[0]
	c.pages = c.pages[1:]
	if u, ok := oldest.content.(Unloader); ok {
		u.Unload()
	}
}
