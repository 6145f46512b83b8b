package logos

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SelectionSize is the number of dynamic cells filled per deal.
const SelectionSize = 6

var ErrEmptyPoolFile = errors.New("pool file lists no logos")

// Pool is the ordered, immutable set of selectable logo references.
type Pool struct {
	items []string
}

// NewPool copies refs, dropping blank entries. Duplicates are kept.
func NewPool(refs []string) Pool {
	items := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		items = append(items, ref)
	}
	return Pool{items: items}
}

func (p Pool) Len() int {
	return len(p.items)
}

// Items returns a copy; callers cannot mutate the pool.
func (p Pool) Items() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

func (p Pool) At(i int) string {
	return p.items[i]
}

// DefaultPool is used when no pool is configured.
func DefaultPool() Pool {
	refs := make([]string, 12)
	for i := range refs {
		refs[i] = fmt.Sprintf("/img/logos/logo-%02d.png", i+1)
	}
	return NewPool(refs)
}

// ParseCSV builds a pool from a comma separated list.
func ParseCSV(val string) Pool {
	return NewPool(strings.Split(val, ","))
}

type poolFile struct {
	Logos []string `yaml:"logos"`
}

// LoadFile reads a YAML document of the form `logos: [a, b, ...]`.
func LoadFile(path string) (Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("read pool file: %w", err)
	}
	var pf poolFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Pool{}, fmt.Errorf("parse pool file %s: %w", path, err)
	}
	pool := NewPool(pf.Logos)
	if pool.Len() == 0 {
		return Pool{}, fmt.Errorf("%s: %w", path, ErrEmptyPoolFile)
	}
	return pool, nil
}

// Resolve applies the precedence csv > file > default.
func Resolve(csv, file string) (Pool, error) {
	if strings.TrimSpace(csv) != "" {
		return ParseCSV(csv), nil
	}
	if strings.TrimSpace(file) != "" {
		return LoadFile(file)
	}
	return DefaultPool(), nil
}
