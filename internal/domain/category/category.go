// Package category holds the category taxonomy: a single nested mapping of
// category name to an ordered list of subcategory names, persisted as one
// JSON document rather than a record collection.
package category

import "context"

// Catalog is the full taxonomy. Subcategory order within a category is
// meaningful and preserved.
type Catalog map[string][]string

// Clone returns a deep copy safe to hand to callers.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, subs := range c {
		copied := make([]string, len(subs))
		copy(copied, subs)
		out[name] = copied
	}
	return out
}

// Repository is the taxonomy contract. Every mutation persists the whole
// structure; implementations serialize access to the in-memory catalog.
// Deleting a category does not cascade to issues already tagged with it.
type Repository interface {
	Catalog(ctx context.Context) (Catalog, error)

	// Add rejects an existing name with a Conflict.
	Add(ctx context.Context, name string) error

	// Rename moves the subcategory list to the new key and drops the old
	// one in a single persist. NotFound when absent.
	Rename(ctx context.Context, oldName, newName string) error

	Delete(ctx context.Context, name string) error

	// AddSub appends a subcategory; a duplicate within the category is a
	// Conflict, an absent category a NotFound.
	AddSub(ctx context.Context, name, sub string) error

	// RenameSub replaces a subcategory in place, keeping its position.
	RenameSub(ctx context.Context, name, oldSub, newSub string) error

	DeleteSub(ctx context.Context, name, sub string) error
}
