package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/category"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

// CategoryRepository keeps the taxonomy in a single JSON document. The whole
// catalog is rewritten on every mutation under one mutex.
type CategoryRepository struct {
	path string
	mu   sync.Mutex
}

func NewCategoryRepository(dataDir string) *CategoryRepository {
	return &CategoryRepository{path: filepath.Join(dataDir, "categories.json")}
}

func (r *CategoryRepository) Catalog(ctx context.Context) (category.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *CategoryRepository) Add(ctx context.Context, name string) error {
	return r.mutate(func(c category.Catalog) error {
		if _, ok := c[name]; ok {
			return errors.NewConflictError("category already exists", fmt.Sprintf("name %s", name))
		}
		c[name] = []string{}
		return nil
	})
}

func (r *CategoryRepository) Rename(ctx context.Context, oldName, newName string) error {
	return r.mutate(func(c category.Catalog) error {
		subs, ok := c[oldName]
		if !ok {
			return errors.NewNotFoundError("category not found", fmt.Sprintf("name %s", oldName))
		}
		if oldName == newName {
			return nil
		}
		if _, ok := c[newName]; ok {
			return errors.NewConflictError("category already exists", fmt.Sprintf("name %s", newName))
		}
		c[newName] = subs
		delete(c, oldName)
		return nil
	})
}

func (r *CategoryRepository) Delete(ctx context.Context, name string) error {
	return r.mutate(func(c category.Catalog) error {
		if _, ok := c[name]; !ok {
			return errors.NewNotFoundError("category not found", fmt.Sprintf("name %s", name))
		}
		delete(c, name)
		return nil
	})
}

func (r *CategoryRepository) AddSub(ctx context.Context, name, sub string) error {
	return r.mutate(func(c category.Catalog) error {
		subs, ok := c[name]
		if !ok {
			return errors.NewNotFoundError("category not found", fmt.Sprintf("name %s", name))
		}
		for _, s := range subs {
			if s == sub {
				return errors.NewConflictError("subcategory already exists", fmt.Sprintf("name %s", sub))
			}
		}
		c[name] = append(subs, sub)
		return nil
	})
}

func (r *CategoryRepository) RenameSub(ctx context.Context, name, oldSub, newSub string) error {
	return r.mutate(func(c category.Catalog) error {
		subs, ok := c[name]
		if !ok {
			return errors.NewNotFoundError("category not found", fmt.Sprintf("name %s", name))
		}
		for i, s := range subs {
			if s == oldSub {
				subs[i] = newSub
				return nil
			}
		}
		return errors.NewNotFoundError("subcategory not found", fmt.Sprintf("name %s", oldSub))
	})
}

func (r *CategoryRepository) DeleteSub(ctx context.Context, name, sub string) error {
	return r.mutate(func(c category.Catalog) error {
		subs, ok := c[name]
		if !ok {
			return errors.NewNotFoundError("category not found", fmt.Sprintf("name %s", name))
		}
		for i, s := range subs {
			if s == sub {
				c[name] = append(subs[:i], subs[i+1:]...)
				return nil
			}
		}
		return errors.NewNotFoundError("subcategory not found", fmt.Sprintf("name %s", sub))
	})
}

func (r *CategoryRepository) mutate(fn func(category.Catalog) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	catalog, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(catalog); err != nil {
		return err
	}
	return r.persist(catalog)
}

func (r *CategoryRepository) load() (category.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return category.Catalog{}, nil
		}
		return nil, fmt.Errorf("read categories: %w", err)
	}
	var catalog category.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if catalog == nil {
		catalog = category.Catalog{}
	}
	return catalog, nil
}

func (r *CategoryRepository) persist(catalog category.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".categories-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write categories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace categories: %w", err)
	}
	return nil
}
