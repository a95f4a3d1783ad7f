// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	"carebridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// actionRepository implements the repository.ActionRepository interface.
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository is the constructor for actionRepository.
func NewActionRepository(db *gorm.DB) repository.ActionRepository {
	return &actionRepository{
		db: db,
	}
}

// CreateAction persists a new action. The database assigns ID and CreatedAt when they are zero.
func (repo *actionRepository) CreateAction(ctx context.Context, action *entity.ActionRecord) error {
	if action.Status == "" {
		action.Status = entity.ActionStatusPending
	}
	actionM := fromActionDomain(action)

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid group, guardian or parent reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("action violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create action")
	}

	// Update the entity with generated values
	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}

// FindActionByID retrieves an action by its unique ID.
func (repo *actionRepository) FindActionByID(ctx context.Context, id uuid.UUID) (*entity.ActionRecord, error) {
	var actionM model.ActionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&actionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActionNotFound
		}

		return nil, errors.Wrap(err, "failed to find action by ID")
	}

	return toActionDomain(&actionM), nil
}

// MarkConsumed moves a pending action forward. The status guard in the WHERE
// clause makes concurrent consumers race safely: only one update lands.
func (repo *actionRepository) MarkConsumed(ctx context.Context, id uuid.UUID, status entity.ActionStatus, playedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActionModel{}).
		Where("id = ? AND status = ?", id, string(entity.ActionStatusPending)).
		Updates(map[string]any{
			"status":    string(status),
			"played_at": playedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark action consumed")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindActionByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrActionStatusConflict
	}

	return nil
}

// FindSentSince lists actions a guardian sent at or after since, newest first.
func (repo *actionRepository) FindSentSince(ctx context.Context, guardianID uuid.UUID, since time.Time) ([]*entity.ActionRecord, error) {
	var actionModels []*model.ActionModel

	if err := repo.db.WithContext(ctx).
		Where("sender_guardian_id = ? AND created_at >= ?", guardianID, since).
		Order("created_at DESC").
		Find(&actionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sent actions")
	}

	return toActionDomains(actionModels), nil
}

// FindReceivedSince lists actions addressed to a parent at or after since, newest first.
func (repo *actionRepository) FindReceivedSince(ctx context.Context, parentID uuid.UUID, since time.Time) ([]*entity.ActionRecord, error) {
	var actionModels []*model.ActionModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_parent_id = ? AND created_at >= ?", parentID, since).
		Order("created_at DESC").
		Find(&actionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find received actions")
	}

	return toActionDomains(actionModels), nil
}

// HasWakeAlertSince reports whether the parent already sent a wake alert at or after since.
// The advisory lock is transaction scoped, so callers inside TransactionManager.Execute
// are serialized per parent until commit. Untagged legacy rows count when they carry the wake text.
func (repo *actionRepository) HasWakeAlertSince(ctx context.Context, parentID uuid.UUID, since time.Time) (bool, error) {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "wake:"+parentID.String()).Error; err != nil {
		return false, errors.Wrap(err, "failed to lock wake alerts")
	}

	var count int64
	if err := db.Model(&model.ActionModel{}).
		Where("recipient_parent_id = ? AND kind = ? AND created_at >= ?", parentID, string(entity.ActionKindCheckIn), since).
		Where("originator_role = ? OR (originator_role IS NULL AND text_message = ?)", string(entity.RoleParent), entity.WakeAlertText).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count wake alerts")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toActionDomains(actionModels []*model.ActionModel) []*entity.ActionRecord {
	actions := make([]*entity.ActionRecord, 0, len(actionModels))
	for _, actionM := range actionModels {
		actions = append(actions, toActionDomain(actionM))
	}

	return actions
}

// toActionDomain converts a GORM ActionModel to a domain ActionRecord entity.
func toActionDomain(data *model.ActionModel) *entity.ActionRecord {
	if data == nil {
		return nil
	}

	action := &entity.ActionRecord{
		ID:                data.ID,
		GroupID:           data.GroupID,
		SenderGuardianID:  data.SenderGuardianID,
		RecipientParentID: data.RecipientParentID,
		Kind:              entity.ActionKind(data.Kind),
		Status:            entity.ActionStatus(data.Status),
		MediaURL:          data.MediaURL,
		TextMessage:       data.TextMessage,
		AdWatched:         data.AdWatched,
		CreatedAt:         data.CreatedAt,
		PlayedAt:          data.PlayedAt,
	}
	if data.OriginatorRole != nil {
		action.OriginatorRole = entity.Role(*data.OriginatorRole)
	}

	return action
}

// fromActionDomain converts a domain ActionRecord entity to a GORM ActionModel.
func fromActionDomain(data *entity.ActionRecord) *model.ActionModel {
	if data == nil {
		return nil
	}

	actionM := &model.ActionModel{
		ID:                data.ID,
		GroupID:           data.GroupID,
		SenderGuardianID:  data.SenderGuardianID,
		RecipientParentID: data.RecipientParentID,
		Kind:              string(data.Kind),
		Status:            string(data.Status),
		MediaURL:          data.MediaURL,
		TextMessage:       data.TextMessage,
		AdWatched:         data.AdWatched,
		CreatedAt:         data.CreatedAt,
		PlayedAt:          data.PlayedAt,
	}
	if data.OriginatorRole != "" {
		role := data.OriginatorRole.String()
		actionM.OriginatorRole = &role
	}

	return actionM
}
