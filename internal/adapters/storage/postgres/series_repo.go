package postgres

import (
	"context"
	"database/sql"
	"strings"

	"breeder-album/internal/domain/series"
)

type SeriesRepo struct {
	db *sql.DB
}

func NewSeriesRepo(db *sql.DB) *SeriesRepo {
	return &SeriesRepo{db: db}
}

const seriesColumns = `
	id, code, name, description,
	sort_order, is_active,
	created_at, updated_at
`

func (r *SeriesRepo) Create(ctx context.Context, s series.Series) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO series (
			id, code, name, description,
			sort_order, is_active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.ID,
		s.Code,
		s.Name,
		s.Description,
		s.SortOrder,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SeriesRepo) Update(ctx context.Context, s series.Series) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE series
		SET
			name = $2,
			description = $3,
			sort_order = $4,
			is_active = $5,
			updated_at = $6
		WHERE id = $1
	`,
		s.ID,
		s.Name,
		s.Description,
		s.SortOrder,
		s.IsActive,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return series.ErrNotFound
	}
	return nil
}

func (r *SeriesRepo) GetByID(ctx context.Context, id string) (series.Series, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return series.Series{}, series.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+seriesColumns+`
		FROM series
		WHERE id = $1
	`, id)
	return scanSeries(row)
}

func (r *SeriesRepo) GetByCode(ctx context.Context, code string) (series.Series, error) {
	if code == "" {
		return series.Series{}, series.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+seriesColumns+`
		FROM series
		WHERE UPPER(TRIM(code)) = $1
	`, code)
	return scanSeries(row)
}

func (r *SeriesRepo) List(ctx context.Context, filter series.ListFilter) ([]series.Series, error) {
	query := `
		SELECT ` + seriesColumns + `
		FROM series
	`
	if !filter.IncludeInactive {
		query += " WHERE is_active"
	}
	query += " ORDER BY sort_order ASC, code ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]series.Series, 0)
	for rows.Next() {
		var s series.Series
		if err := rows.Scan(
			&s.ID,
			&s.Code,
			&s.Name,
			&s.Description,
			&s.SortOrder,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSeries(row *sql.Row) (series.Series, error) {
	var s series.Series
	if err := row.Scan(
		&s.ID,
		&s.Code,
		&s.Name,
		&s.Description,
		&s.SortOrder,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return series.Series{}, series.ErrNotFound
		}
		return series.Series{}, err
	}
	return s, nil
}
