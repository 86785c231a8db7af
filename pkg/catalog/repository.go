// Package catalog keeps named reference compounds pairing a systematic name
// with its standard InChI.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var (
	ErrNotFound        = errors.New("catalog: compound not found")
	ErrInvalidCompound = errors.New("catalog: invalid compound")
)

//go:embed data/compounds.yaml
var defaultCompounds []byte

// Compound is one catalog entry.
type Compound struct {
	Name  string `yaml:"name"`
	IUPAC string `yaml:"iupac"`
	InChI string `yaml:"inchi"`
}

type catalogFile struct {
	Compounds []Compound `yaml:"compounds"`
}

// Repository looks compounds up by name.
type Repository interface {
	Lookup(name string) (Compound, error)
	All() []Compound
}

// MemoryRepository is an in-memory Repository. Later entries replace earlier
// ones with the same name but keep their original position.
type MemoryRepository struct {
	mu        sync.RWMutex
	compounds map[string]Compound
	order     []string
	logger    *zap.Logger
}

// NewMemoryRepository creates an empty repository. A nil logger discards
// output.
func NewMemoryRepository(logger *zap.Logger) *MemoryRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryRepository{
		compounds: make(map[string]Compound),
		logger:    logger,
	}
}

// Default returns a repository holding the embedded reference compounds.
func Default(logger *zap.Logger) (*MemoryRepository, error) {
	r := NewMemoryRepository(logger)
	if err := r.Load(defaultCompounds, "embedded"); err != nil {
		return nil, err
	}
	return r, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add registers a compound.
func (r *MemoryRepository) Add(c Compound) error {
	if key(c.Name) == "" || c.IUPAC == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidCompound, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(c.Name)
	if _, ok := r.compounds[k]; !ok {
		r.order = append(r.order, k)
	}
	r.compounds[k] = c
	return nil
}

// Lookup implements Repository. Names are case-insensitive.
func (r *MemoryRepository) Lookup(name string) (Compound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.compounds[key(name)]; ok {
		return c, nil
	}
	return Compound{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// All implements Repository, returning compounds in insertion order.
func (r *MemoryRepository) All() []Compound {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Compound, 0, len(r.order))
	for _, k := range r.order {
		all = append(all, r.compounds[k])
	}
	return all
}

// Len returns the number of compounds.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Load adds the compounds of a YAML document. source names the document in
// errors and logs.
func (r *MemoryRepository) Load(data []byte, source string) error {
	var file catalogFile
	if err := yaml.UnmarshalStrict(bytes.TrimSpace(data), &file); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	for _, c := range file.Compounds {
		if err := r.Add(c); err != nil {
			return fmt.Errorf("catalog: add from %s: %w", source, err)
		}
	}
	r.logger.Debug("loaded catalog", zap.String("source", source), zap.Int("compounds", len(file.Compounds)))
	return nil
}

// LoadFiles loads the given YAML files.
func (r *MemoryRepository) LoadFiles(paths ...string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		if err := r.Load(data, path); err != nil {
			return err
		}
	}
	return nil
}

// LoadDir recursively loads all .yaml and .yml files below root.
func (r *MemoryRepository) LoadDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isCatalogFile(path) {
			return nil
		}
		return r.LoadFiles(path)
	})
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
