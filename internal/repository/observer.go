package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueryObserver receives query timings. *service.MetricsService satisfies it.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type baseRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

func (r baseRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// execAffecting runs a write and maps zero affected rows to sql.ErrNoRows.
func (r baseRepository) execAffecting(ctx context.Context, label, query string, args ...interface{}) error {
	defer r.observe(label, time.Now())

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
