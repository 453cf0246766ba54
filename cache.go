package consts

import (
	"fmt"
	"os"
	"sync"

	"github.com/wongjn/postcss-consts/stylesheet"
)

// ReadFunc reads a named file. It exists so tests can observe and stub
// file access.
type ReadFunc func(name string) ([]byte, error)

// Cache memoizes the constant tables of external definition files for the
// lifetime of the process. Each path is read and parsed at most once;
// entries are never invalidated or refreshed. The key is the path string
// exactly as supplied — no normalization, so two spellings of the same
// file are distinct entries.
type Cache struct {
	mu     sync.Mutex
	read   ReadFunc
	tables map[string]Table
}

// NewCache returns a Cache reading through os.ReadFile. One Cache should
// be shared across every resolution in a process.
func NewCache() *Cache {
	return NewCacheUsing(os.ReadFile)
}

// NewCacheUsing returns a Cache with a custom read collaborator.
func NewCacheUsing(read ReadFunc) *Cache {
	return &Cache{read: read, tables: make(map[string]Table)}
}

// Load returns the constant table for path, reading and collecting it on
// first use. The returned table is a shared snapshot: callers must not
// mutate it. A read or parse failure propagates and caches nothing.
func (c *Cache) Load(path string, m Matcher) (Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if table, ok := c.tables[path]; ok {
		return table, nil
	}

	blob, err := c.read(path)
	if err != nil {
		return nil, fmt.Errorf("read constants file: %w", err)
	}
	sheet, err := stylesheet.Parse(string(blob))
	if err != nil {
		return nil, fmt.Errorf("parse constants file %s: %w", path, err)
	}

	table := Collect(sheet, m, nil)
	c.tables[path] = table
	return table, nil
}
