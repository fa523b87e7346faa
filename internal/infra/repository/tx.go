package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// withinTx is the one scoped-transaction entry point for every repository:
// commit when fn returns nil, rollback on error or panic. Non-business
// errors come back as OperationFailed with the cause attached.
func withinTx(
	ctx context.Context,
	db *gorm.DB,
	fn func(tx *gorm.DB) error,
) error {
	err := db.WithContext(ctx).Transaction(fn)
	return httperr.AsBusiness(err)
}

// first loads one row into dst, mapping "no rows" to (false, nil).
func first(q *gorm.DB, dst any) (bool, error) {
	err := q.First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
