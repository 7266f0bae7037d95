package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/naval41/discord-application/pkg/model"
)

// JobRolesForCompany returns the company's role taxonomy via its job
// profiles, in stable fetch order. Read-only; roles are maintained
// elsewhere.
func (r *Repository) JobRolesForCompany(ctx context.Context, companyID uuid.UUID) ([]model.JobRole, error) {
	const q = `
SELECT jr.id, jr.name, jr.slug, jp.name AS profile_name
FROM public."JobRole" jr
JOIN public."JobProfile" jp ON jr."jobProfileId" = jp.id
WHERE jp."companyId" = $1
ORDER BY jr.id`

	rows, err := r.db.Query(ctx, q, companyID.String())
	if err != nil {
		return nil, fmt.Errorf("query job roles: %w", err)
	}
	defer rows.Close()

	var out []model.JobRole
	for rows.Next() {
		var role model.JobRole
		if err := rows.Scan(&role.ID, &role.Name, &role.Slug, &role.ProfileName); err != nil {
			return nil, fmt.Errorf("scan job role: %w", err)
		}
		out = append(out, role)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// JobRoleByFuzzyName finds any role matching the name across all
// companies. Returns nil without error when nothing matches; the caller's
// fallback chain treats that as its last miss.
func (r *Repository) JobRoleByFuzzyName(ctx context.Context, name string) (*model.JobRole, error) {
	const q = `SELECT id, name, slug FROM public."JobRole" WHERE name ILIKE $1 LIMIT 1`

	var role model.JobRole
	err := r.db.QueryRow(ctx, q, "%"+name+"%").Scan(&role.ID, &role.Name, &role.Slug)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query job role by name: %w", err)
	}
	return &role, nil
}
