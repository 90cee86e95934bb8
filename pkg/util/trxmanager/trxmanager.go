package trxmanager

import (
	"taskdesk/internal/abstraction"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type trxManager struct {
	db *gorm.DB
}

func New(db *gorm.DB) *trxManager {
	return &trxManager{db}
}

// WithTrx runs fn inside a database transaction. The transaction connection
// travels on the context so repositories pick it up through CheckTrx.
func (g *trxManager) WithTrx(ctx *abstraction.Context, fn func(ctx *abstraction.Context) error) (err error) {
	trx := g.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("panic inside transaction, rolling back: %v", r)
			trx.Rollback()
			panic(r)
		}
	}()

	ctx.Trx = &abstraction.TrxContext{Db: trx}
	defer func() {
		ctx.Trx = nil
	}()

	if err = fn(ctx); err != nil {
		trx.Rollback()
		return err
	}

	return trx.Commit().Error
}
