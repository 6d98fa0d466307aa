package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"breeder-album/internal/domain/breeders"
)

type BreedersRepo struct {
	db *sql.DB
}

func NewBreedersRepo(db *sql.DB) *BreedersRepo {
	return &BreedersRepo{db: db}
}

const breederColumns = `
	id, code, name, sex,
	sire_code, dam_code, mate_code,
	thumbnail_url, series_id, notes,
	created_at, updated_at
`

func (r *BreedersRepo) Create(ctx context.Context, b breeders.Breeder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeders (
			id, code, name, sex,
			sire_code, dam_code, mate_code,
			thumbnail_url, series_id, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		b.ID,
		b.Code,
		b.Name,
		string(b.Sex),
		b.SireCode,
		b.DamCode,
		b.MateCode,
		b.ThumbnailURL,
		b.SeriesID,
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BreedersRepo) Update(ctx context.Context, b breeders.Breeder) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeders
		SET
			name = $2,
			sex = $3,
			sire_code = $4,
			dam_code = $5,
			mate_code = $6,
			thumbnail_url = $7,
			series_id = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		string(b.Sex),
		b.SireCode,
		b.DamCode,
		b.MateCode,
		b.ThumbnailURL,
		b.SeriesID,
		b.Notes,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeders.ErrNotFound
	}
	return nil
}

func (r *BreedersRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeders.Breeder{}, breeders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE id = $1
	`, id)
	return scanBreeder(row)
}

// GetByCode espera el código ya normalizado; el UPPER del lado SQL cubre
// filas migradas con el código en minúsculas.
func (r *BreedersRepo) GetByCode(ctx context.Context, code string) (breeders.Breeder, error) {
	if code == "" {
		return breeders.Breeder{}, breeders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE UPPER(TRIM(code)) = $1
	`, code)
	return scanBreeder(row)
}

func (r *BreedersRepo) List(ctx context.Context, filter breeders.ListFilter) ([]breeders.Breeder, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + breederColumns + `
		FROM breeders
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.SeriesID != "" {
		sb.WriteString(fmt.Sprintf(" AND series_id = $%d", argN))
		args = append(args, filter.SeriesID)
		argN++
	}
	if filter.Sex != "" {
		sb.WriteString(fmt.Sprintf(" AND sex = $%d", argN))
		args = append(args, string(filter.Sex))
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	sb.WriteString(" ORDER BY code ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	return r.queryBreeders(ctx, sb.String(), args...)
}

func (r *BreedersRepo) ListByParents(ctx context.Context, sireCode, damCode string) ([]breeders.Breeder, error) {
	if sireCode == "" || damCode == "" {
		return nil, nil
	}
	return r.queryBreeders(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE UPPER(TRIM(sire_code)) = $1
		  AND UPPER(TRIM(dam_code)) = $2
		ORDER BY code ASC
	`, sireCode, damCode)
}

func (r *BreedersRepo) ListChildrenByParentCode(ctx context.Context, code string) ([]breeders.Breeder, error) {
	if code == "" {
		return nil, nil
	}
	return r.queryBreeders(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE UPPER(TRIM(sire_code)) = $1
		   OR UPPER(TRIM(dam_code)) = $1
		ORDER BY code ASC
	`, code)
}

func (r *BreedersRepo) ListFemalesByMateCode(ctx context.Context, codes []string) ([]breeders.Breeder, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	placeholders := make([]string, 0, len(codes))
	args := []any{string(breeders.SexFemale)}
	for i, c := range codes {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, c)
	}

	return r.queryBreeders(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE sex = $1
		  AND UPPER(TRIM(mate_code)) IN (`+strings.Join(placeholders, ",")+`)
		ORDER BY code ASC
	`, args...)
}

func (r *BreedersRepo) queryBreeders(ctx context.Context, query string, args ...any) ([]breeders.Breeder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeders.Breeder, 0)
	for rows.Next() {
		b, err := scanBreederRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBreederRow(row rowScanner) (breeders.Breeder, error) {
	var b breeders.Breeder
	var sex string
	if err := row.Scan(
		&b.ID,
		&b.Code,
		&b.Name,
		&sex,
		&b.SireCode,
		&b.DamCode,
		&b.MateCode,
		&b.ThumbnailURL,
		&b.SeriesID,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return breeders.Breeder{}, err
	}
	b.Sex = breeders.Sex(sex)
	return b, nil
}

func scanBreeder(row *sql.Row) (breeders.Breeder, error) {
	b, err := scanBreederRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return breeders.Breeder{}, breeders.ErrNotFound
		}
		return breeders.Breeder{}, err
	}
	return b, nil
}
