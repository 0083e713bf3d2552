package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/hospital"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

var hospitalSchema = flatfile.Schema{"name", "zone"}

type HospitalRepository struct {
	store *flatfile.Store
}

func NewHospitalRepository(store *flatfile.Store) *HospitalRepository {
	return &HospitalRepository{store: store}
}

func (r *HospitalRepository) List(ctx context.Context) ([]*hospital.Hospital, error) {
	records, err := r.store.ReadAll(constants.CollectionHospitals)
	if err != nil {
		return nil, err
	}
	hospitals := make([]*hospital.Hospital, 0, len(records))
	for _, rec := range records {
		hospitals = append(hospitals, &hospital.Hospital{Name: rec["name"], Zone: rec["zone"]})
	}
	sort.SliceStable(hospitals, func(i, j int) bool {
		return strings.ToLower(hospitals[i].Name) < strings.ToLower(hospitals[j].Name)
	})
	return hospitals, nil
}

func (r *HospitalRepository) Add(ctx context.Context, h *hospital.Hospital) error {
	return r.store.Mutate(constants.CollectionHospitals, hospitalSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		if hasHospital(records, h.Name) {
			return nil, errors.NewConflictError("hospital already exists", fmt.Sprintf("name %s", h.Name))
		}
		return append(records, flatfile.Record{"name": h.Name, "zone": h.Zone}), nil
	})
}

func (r *HospitalRepository) Update(ctx context.Context, name string, updated *hospital.Hospital) error {
	return r.store.Mutate(constants.CollectionHospitals, hospitalSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		idx := -1
		for i, rec := range records {
			if strings.EqualFold(rec["name"], name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, errors.NewNotFoundError("hospital not found", fmt.Sprintf("name %s", name))
		}
		if !strings.EqualFold(name, updated.Name) && hasHospital(records, updated.Name) {
			return nil, errors.NewConflictError("hospital already exists", fmt.Sprintf("name %s", updated.Name))
		}
		records[idx] = flatfile.Record{"name": updated.Name, "zone": updated.Zone}
		return records, nil
	})
}

func (r *HospitalRepository) Delete(ctx context.Context, name string) error {
	return r.store.Mutate(constants.CollectionHospitals, hospitalSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		found := false
		for _, rec := range records {
			if strings.EqualFold(rec["name"], name) {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		if !found {
			return nil, errors.NewNotFoundError("hospital not found", fmt.Sprintf("name %s", name))
		}
		return kept, nil
	})
}

func (r *HospitalRepository) BulkAdd(ctx context.Context, entries []*hospital.Hospital) (*hospital.BulkAddResult, error) {
	result := &hospital.BulkAddResult{}
	err := r.store.Mutate(constants.CollectionHospitals, hospitalSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, h := range entries {
			if hasHospital(records, h.Name) {
				result.Skipped++
				continue
			}
			records = append(records, flatfile.Record{"name": h.Name, "zone": h.Zone})
			result.Added++
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func hasHospital(records []flatfile.Record, name string) bool {
	for _, rec := range records {
		if strings.EqualFold(rec["name"], name) {
			return true
		}
	}
	return false
}
