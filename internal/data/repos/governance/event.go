package governance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/funkyrave/funky-backend/internal/domain"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type GovernanceEventRepo interface {
	Append(ctx context.Context, tx *gorm.DB, kind string, subjectID, actorID uuid.UUID, payload datatypes.JSON) error
	ListByKind(ctx context.Context, tx *gorm.DB, kind string, limit int) ([]*types.GovernanceEvent, error)
}

type governanceEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGovernanceEventRepo(db *gorm.DB, baseLog *logger.Logger) GovernanceEventRepo {
	repoLog := baseLog.With("repo", "GovernanceEventRepo")
	return &governanceEventRepo{db: db, log: repoLog}
}

func (er *governanceEventRepo) Append(ctx context.Context, tx *gorm.DB, kind string, subjectID, actorID uuid.UUID, payload datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).Create(&types.GovernanceEvent{
		ID:        uuid.New(),
		Kind:      kind,
		SubjectID: subjectID,
		ActorID:   actorID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}).Error
}

func (er *governanceEventRepo) ListByKind(ctx context.Context, tx *gorm.DB, kind string, limit int) ([]*types.GovernanceEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.GovernanceEvent
	q := transaction.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
