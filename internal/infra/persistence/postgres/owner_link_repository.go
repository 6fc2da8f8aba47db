package postgres

import (
	"context"

	"zeneasy/internal/domain/entity"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerLinkRepository implements the repository.OwnerLinkRepository interface.
type ownerLinkRepository struct {
	db *gorm.DB
}

// NewOwnerLinkRepository is the constructor for ownerLinkRepository.
func NewOwnerLinkRepository(db *gorm.DB) repository.OwnerLinkRepository {
	return &ownerLinkRepository{
		db: db,
	}
}

// Append adds childID at the end of the owner's list of the given kind.
// Position is max+1 of the owner's list of that kind, computed inside the insert.
func (repo *ownerLinkRepository) Append(ctx context.Context, ownerID uuid.UUID, kind entity.OwnerLinkKind, childID uuid.UUID) error {
	if !kind.IsValid() {
		return errors.Errorf("invalid owner link kind %q", kind)
	}

	err := repo.db.WithContext(ctx).Exec(
		`INSERT INTO owner_links (owner_id, kind, child_id, position, created_at)
		SELECT ?, ?, ?, COALESCE(MAX(position), 0) + 1, NOW()
		FROM owner_links WHERE owner_id = ? AND kind = ?`,
		ownerID, kind.String(), childID, ownerID, kind.String(),
	).Error
	if err != nil {
		return errors.Wrap(err, "failed to append owner link")
	}

	return nil
}

// ChildIDs returns the owner's child ids of the given kind in append order.
func (repo *ownerLinkRepository) ChildIDs(ctx context.Context, ownerID uuid.UUID, kind entity.OwnerLinkKind) ([]uuid.UUID, error) {
	var linkModels []*model.OwnerLinkModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ?", ownerID, kind.String()).
		Order("position, created_at").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owner links")
	}

	ids := make([]uuid.UUID, 0, len(linkModels))
	for _, linkM := range linkModels {
		ids = append(ids, linkM.ChildID)
	}

	return ids, nil
}

// linkSet is the ownership view of a single user.
type linkSet struct {
	rents    []uuid.UUID
	services []uuid.UUID
}

func (s *linkSet) applyTo(user *entity.User) {
	if s == nil {
		return
	}

	user.RentPosts = append(user.RentPosts, s.rents...)
	user.ProfessionalProfiles = append(user.ProfessionalProfiles, s.services...)
}

// loadOwnerLinks reads the ownership index of several owners in one query.
func loadOwnerLinks(ctx context.Context, db *gorm.DB, ownerIDs []uuid.UUID) (map[uuid.UUID]*linkSet, error) {
	sets := make(map[uuid.UUID]*linkSet, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return sets, nil
	}

	var linkModels []*model.OwnerLinkModel
	if err := db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Order("owner_id, kind, position, created_at").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load owner links")
	}

	for _, linkM := range linkModels {
		set, ok := sets[linkM.OwnerID]
		if !ok {
			set = &linkSet{}
			sets[linkM.OwnerID] = set
		}

		switch entity.OwnerLinkKind(linkM.Kind) {
		case entity.OwnerLinkRent:
			set.rents = append(set.rents, linkM.ChildID)
		case entity.OwnerLinkService:
			set.services = append(set.services, linkM.ChildID)
		}
	}

	return sets, nil
}
