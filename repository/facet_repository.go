package repository

import (
	"context"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FacetRepository aggregates the dynamic facet definitions straight off the
// JSONB attribute maps. These are read-heavy grouping queries, so they go
// through the raw pgx pool instead of GORM.
type FacetRepository struct {
	pool *pgxpool.Pool
}

func NewFacetRepository(pool *pgxpool.Pool) *FacetRepository {
	return &FacetRepository{pool: pool}
}

// ListFacetDefinitions returns sectionName → attrName → ordered values for
// every attribute appearing on active variations inside the scope.
func (r *FacetRepository) ListFacetDefinitions(ctx context.Context, scope map[uuid.UUID]struct{}) (map[string]map[string][]string, error) {
	if len(scope) == 0 {
		return map[string]map[string][]string{}, nil
	}

	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id.String())
	}

	query := `
		SELECT DISTINCT attr.key AS name, attr.value AS option
		FROM variations v
		JOIN products p ON p.id = v.product_id,
		LATERAL jsonb_each_text(v.attributes) AS attr
		WHERE v.status = 'Active'
		  AND p.status = 'Active'
		  AND p.category_id = ANY($1::uuid[])
		ORDER BY attr.key ASC, attr.value ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attributes := make(map[string][]string)
	for rows.Next() {
		var name, option string
		if err := rows.Scan(&name, &option); err != nil {
			return nil, err
		}
		attributes[name] = append(attributes[name], option)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return map[string]map[string][]string{
		"Specifications": attributes,
	}, nil
}

// PriceRange returns the min and max active variation price inside the scope.
func (r *FacetRepository) PriceRange(ctx context.Context, scope map[uuid.UUID]struct{}) (models.PriceRange, error) {
	if len(scope) == 0 {
		return models.PriceRange{}, nil
	}

	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id.String())
	}

	query := `
		SELECT
			COALESCE(MIN(v.price), 0)::float8 AS min,
			COALESCE(MAX(v.price), 0)::float8 AS max
		FROM variations v
		JOIN products p ON p.id = v.product_id
		WHERE v.status = 'Active'
		  AND p.status = 'Active'
		  AND p.category_id = ANY($1::uuid[])
	`

	var pr models.PriceRange
	if err := r.pool.QueryRow(ctx, query, ids).Scan(&pr.Min, &pr.Max); err != nil {
		return models.PriceRange{}, err
	}
	return pr, nil
}
