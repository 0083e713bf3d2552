package issue

import (
	"sort"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

// Filter narrows an issue listing. Zero values match everything.
type Filter struct {
	Category string
	Hospital string
	Zone     string
	Priority string
	Status   string
	Search   string

	// OwnerName enables the "my tasks" view: issues owned or co-owned by
	// this name and not yet closed.
	OwnerName string
}

// Matches reports whether the issue passes every populated filter field.
func (f Filter) Matches(i *Issue) bool {
	if f.OwnerName != "" {
		if !i.IsOwnedBy(f.OwnerName) || i.Status.IsClosed() {
			return false
		}
	}
	if f.Category != "" && !matchesCategory(i.Category, f.Category) {
		return false
	}
	if f.Hospital != "" && i.HospitalUnit != f.Hospital {
		return false
	}
	if f.Zone != "" && i.Zone != f.Zone {
		return false
	}
	if f.Priority != "" && i.Priority.String() != f.Priority {
		return false
	}
	if f.Status != "" && i.Status.String() != f.Status {
		return false
	}
	if f.Search != "" && !matchesSearch(i, f.Search) {
		return false
	}
	return true
}

// matchesCategory accepts the exact category or any subcategory of it,
// stored in "Parent: Sub" form. "A" matches "A" and "A: B" but not "AB".
func matchesCategory(category, filter string) bool {
	return category == filter || strings.HasPrefix(category, filter+": ")
}

func matchesSearch(i *Issue, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{i.TaskName, i.Description, i.HospitalUnit, i.Category} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// ApplyFilter returns the issues passing the filter, preserving order.
func ApplyFilter(issues []*Issue, f Filter) []*Issue {
	filtered := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		if f.Matches(i) {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

// SortIssues orders issues by the named field. Values that both parse as
// timestamps compare chronologically, anything else compares as raw text.
// The sort is stable so ties keep their stored order.
func SortIssues(issues []*Issue, field string, descending bool) {
	sort.SliceStable(issues, func(a, b int) bool {
		less := lessByField(issues[a], issues[b], field)
		if descending {
			return lessByField(issues[b], issues[a], field)
		}
		return less
	})
}

func lessByField(a, b *Issue, field string) bool {
	av := fieldValue(a, field)
	bv := fieldValue(b, field)

	at, aok := utils.ParseTimestamp(av)
	bt, bok := utils.ParseTimestamp(bv)
	if aok && bok {
		return at.Before(bt)
	}
	return av < bv
}

// fieldValue resolves a sort field by its storage name.
func fieldValue(i *Issue, field string) string {
	switch field {
	case "id":
		return i.ID
	case "hospitalUnit":
		return i.HospitalUnit
	case "zone":
		return i.Zone
	case "priority":
		return i.Priority.String()
	case "category":
		return i.Category
	case "taskName":
		return i.TaskName
	case "mainOwner":
		return i.MainOwner
	case "dueDate":
		return i.DueDate
	case "status":
		return i.Status.String()
	case "dateLogged":
		return i.DateLogged
	case "dateClosed":
		return i.DateClosed
	case "lastModified":
		return i.LastModified
	default:
		return i.DateLogged
	}
}
