package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/catalog.yaml"

// ErrEmpty is returned when a catalog source declares no entries.
var ErrEmpty = errors.New("catalog: no entries")

// Entry describes one equipment type and the values it auto-fills.
type Entry struct {
	Name          string `json:"name" yaml:"name"`
	NomeComercial string `json:"nomeComercial" yaml:"nomeComercial"`
	CertificadoCA string `json:"certificadoCA" yaml:"certificadoCA"`
}

// Catalog maps equipment type names to their entries. It is immutable once
// built and safe for concurrent reads.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCatalogPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultCatalog, defaultErr = Load(f)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog and panics if it cannot be parsed.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

type catalogFile struct {
	Entries []Entry `yaml:"entries"`
}

// Load parses a YAML (or JSON) catalog document.
func Load(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return New(doc.Entries...)
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return c, nil
}

// New builds a catalog from entries, preserving their order. Names are trimmed
// and must be unique and non-empty.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for i, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog: entry %d has an empty name", i)
		}
		if _, exists := c.entries[entry.Name]; exists {
			return nil, fmt.Errorf("catalog: duplicate entry %q", entry.Name)
		}
		entry.NomeComercial = strings.TrimSpace(entry.NomeComercial)
		entry.CertificadoCA = strings.TrimSpace(entry.CertificadoCA)
		c.entries[entry.Name] = entry
		c.order = append(c.order, entry.Name)
	}
	return c, nil
}

// Lookup returns the entry registered under name. Matching is exact; the
// empty name never matches.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil || name == "" {
		return Entry{}, false
	}
	entry, ok := c.entries[name]
	return entry, ok
}

// Names returns the equipment type names in declaration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c.order...)
}

// Entries returns every entry in declaration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name])
	}
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
