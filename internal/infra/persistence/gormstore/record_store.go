package gormstore

import (
	"context"
	"slices"

	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordStore implements get, list, insert and update for one table. Filters
// and patches are restricted to the declared columns so that request input
// never names arbitrary SQL identifiers.
type recordStore[M any] struct {
	db       *gorm.DB
	table    string
	notFound *domainerrors.BaseError
	conflict *domainerrors.BaseError
	orderBy  string
	columns  []string
}

func (s recordStore[M]) get(ctx context.Context, id any) (*M, error) {
	var row M
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get "+s.table)
	}

	return &row, nil
}

func (s recordStore[M]) list(ctx context.Context, filter repository.Filter) ([]*M, error) {
	query := s.db.WithContext(ctx).Model(new(M))

	conditions, err := s.conditions(filter)
	if err != nil {
		return nil, err
	}
	if len(conditions) > 0 {
		query = query.Clauses(clause.Where{Exprs: conditions})
	}
	if s.orderBy != "" {
		query = query.Order(s.orderBy)
	}

	var rows []*M
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+s.table)
	}

	return rows, nil
}

func (s recordStore[M]) insert(ctx context.Context, row *M) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateWriteError(err, s.conflict, "failed to insert "+s.table)
	}

	return nil
}

func (s recordStore[M]) update(ctx context.Context, id any, patch repository.Patch) (*M, error) {
	if len(patch) == 0 {
		return s.get(ctx, id)
	}
	for column := range patch {
		if !slices.Contains(s.columns, column) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported field: " + column)
		}
	}

	result := s.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(map[string]any(patch))
	if result.Error != nil {
		return nil, translateWriteError(result.Error, s.conflict, "failed to update "+s.table)
	}
	if result.RowsAffected == 0 {
		return nil, s.notFound
	}

	return s.get(ctx, id)
}

func (s recordStore[M]) conditions(filter repository.Filter) ([]clause.Expression, error) {
	if len(filter) == 0 {
		return nil, nil
	}

	columns := make([]string, 0, len(filter))
	for column := range filter {
		if !slices.Contains(s.columns, column) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported filter: " + column)
		}
		columns = append(columns, column)
	}
	slices.Sort(columns)

	exprs := make([]clause.Expression, 0, len(columns))
	for _, column := range columns {
		exprs = append(exprs, clause.Eq{Column: clause.Column{Name: column}, Value: filter[column]})
	}

	return exprs, nil
}

func mapRows[M, E any](rows []*M, toDomain func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}

	return out
}
