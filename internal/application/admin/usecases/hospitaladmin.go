package usecases

import (
	"context"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/hospital"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type HospitalAdminUseCase struct {
	hospitalRepo hospital.Repository
	logger       logger.Interface
}

func NewHospitalAdminUseCase(hospitalRepo hospital.Repository, logger logger.Interface) *HospitalAdminUseCase {
	return &HospitalAdminUseCase{hospitalRepo: hospitalRepo, logger: logger}
}

func (uc *HospitalAdminUseCase) List(ctx context.Context) ([]*hospital.Hospital, error) {
	return uc.hospitalRepo.List(ctx)
}

func (uc *HospitalAdminUseCase) Add(ctx context.Context, name, zone string) error {
	h, err := hospital.NewHospital(name, zone)
	if err != nil {
		return err
	}
	if err := uc.hospitalRepo.Add(ctx, h); err != nil {
		return err
	}
	uc.logger.Infow("hospital added", "name", h.Name, "zone", h.Zone)
	return nil
}

func (uc *HospitalAdminUseCase) Edit(ctx context.Context, name, newName, newZone string) error {
	updated, err := hospital.NewHospital(newName, newZone)
	if err != nil {
		return err
	}
	if err := uc.hospitalRepo.Update(ctx, name, updated); err != nil {
		return err
	}
	uc.logger.Infow("hospital updated", "name", name, "new_name", updated.Name)
	return nil
}

func (uc *HospitalAdminUseCase) Delete(ctx context.Context, name string) error {
	if err := uc.hospitalRepo.Delete(ctx, name); err != nil {
		return err
	}
	uc.logger.Infow("hospital deleted", "name", name)
	return nil
}

// BulkAddText parses newline-delimited "name,zone" lines and inserts every
// non-duplicate in one rewrite. Blank lines and blank names are ignored,
// duplicates counted as skipped.
func (uc *HospitalAdminUseCase) BulkAddText(ctx context.Context, text string) (*hospital.BulkAddResult, error) {
	var entries []*hospital.Hospital
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		name := strings.TrimSpace(parts[0])
		zone := ""
		if len(parts) > 1 {
			zone = strings.TrimSpace(parts[1])
		}
		if name == "" {
			continue
		}
		entries = append(entries, &hospital.Hospital{Name: name, Zone: zone})
	}

	result, err := uc.hospitalRepo.BulkAdd(ctx, entries)
	if err != nil {
		uc.logger.Errorw("bulk hospital add failed", "error", err)
		return nil, err
	}
	uc.logger.Infow("bulk hospital add", "added", result.Added, "skipped", result.Skipped)
	return result, nil
}
