package postgres

import (
	"context"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/repository"
	"carebridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// familyRepository implements the repository.FamilyRepository interface.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository is the constructor for familyRepository.
func NewFamilyRepository(db *gorm.DB) repository.FamilyRepository {
	return &familyRepository{
		db: db,
	}
}

// FindGroupIDsByGuardian returns every group the guardian is a member of.
func (repo *familyRepository) FindGroupIDsByGuardian(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error) {
	var groupIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FamilyMemberModel{}).
		Where("guardian_id = ?", guardianID).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups by guardian")
	}

	return groupIDs, nil
}

// FindLatestGroupByGuardian returns the group the guardian joined most recently.
func (repo *familyRepository) FindLatestGroupByGuardian(ctx context.Context, guardianID uuid.UUID) (*entity.FamilyGroup, error) {
	var groupM model.FamilyGroupModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN family_members ON family_members.group_id = family_groups.id").
		Where("family_members.guardian_id = ?", guardianID).
		Order("family_members.created_at DESC").
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest group by guardian")
	}

	return toGroupDomain(&groupM), nil
}

// FindGroupByParent returns the most recent group of the parent.
func (repo *familyRepository) FindGroupByParent(ctx context.Context, parentID uuid.UUID) (*entity.FamilyGroup, error) {
	var groupM model.FamilyGroupModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by parent")
	}

	return toGroupDomain(&groupM), nil
}

// FindPrimaryMember returns the primary guardian membership of a group.
func (repo *familyRepository) FindPrimaryMember(ctx context.Context, groupID uuid.UUID) (*entity.FamilyMember, error) {
	var memberM model.FamilyMemberModel

	if err := repo.db.WithContext(ctx).
		Where("group_id = ? AND role = ?", groupID, string(entity.MemberRolePrimary)).
		Order("created_at ASC").
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find primary member")
	}

	return &entity.FamilyMember{
		GroupID:    memberM.GroupID,
		GuardianID: memberM.GuardianID,
		Role:       entity.MemberRole(memberM.Role),
		CreatedAt:  memberM.CreatedAt,
	}, nil
}

func toGroupDomain(data *model.FamilyGroupModel) *entity.FamilyGroup {
	return &entity.FamilyGroup{
		ID:        data.ID,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
	}
}
