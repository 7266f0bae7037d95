package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/naval41/discord-application/pkg/model"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// GetOrCreateCompany looks a company up by slug and inserts it with system
// audit fields if absent. An existing company is returned unchanged; this
// never updates on conflict.
func (r *Repository) GetOrCreateCompany(ctx context.Context, name, slug string) (*model.Company, error) {
	const selectQ = `SELECT id, name, slug, "createdAt", "updatedAt" FROM public."Company" WHERE slug = $1`

	var company model.Company
	err := r.db.QueryRow(ctx, selectQ, slug).Scan(
		&company.CompanyID, &company.Name, &company.Slug, &company.CreatedAt, &company.UpdatedAt,
	)
	if err == nil {
		return &company, nil
	}
	if !isNoRows(err) {
		return nil, fmt.Errorf("query company by slug: %w", err)
	}

	const insertQ = `
INSERT INTO public."Company" (
	id, name, slug, description, "createdAt", "updatedAt", "createdBy", "updatedBy"
) VALUES ($1, $2, $3, '', NOW(), NOW(), 'system', 'system')`

	newID := uuid.New()
	if _, err := r.db.Exec(ctx, insertQ, newID.String(), name, slug); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	err = r.db.QueryRow(ctx, selectQ, slug).Scan(
		&company.CompanyID, &company.Name, &company.Slug, &company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("reselect company: %w", err)
	}
	return &company, nil
}
