// Package activity records the audit trail behind the dashboard's
// "recent activities" feed. Recording is best-effort: a failed insert is
// logged and never fails the request that triggered it.
package activity

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
)

type Recorder struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewRecorder(db *gorm.DB, log zerolog.Logger) *Recorder {
	return &Recorder{db: db, log: log}
}

func (r *Recorder) Record(userID, typ, action, module string, entityID *string) {
	a := &entities.Activity{
		UserID:   userID,
		Type:     typ,
		Action:   action,
		Module:   module,
		EntityID: entityID,
	}
	if err := r.db.Create(a).Error; err != nil {
		r.log.Warn().Err(err).Str("type", typ).Msg("record activity")
	}
}
