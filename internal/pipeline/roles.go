package pipeline

import (
	"context"
	"strings"

	"github.com/naval41/discord-application/pkg/model"
	"go.uber.org/zap"
)

const genericRoleName = "Software Engineer"

// resolveJobRole validates the extraction's claimed role id against the
// company's role list and, when that fails, walks a strict fallback
// chain: a same-company "software engineer" role, then the first company
// role, then a global fuzzy lookup. A nil role with nil error means
// abandonment. The ordering prefers a same-company generic role over a
// cross-company one, and never leaves the role unresolved if the company
// has any role at all.
func (d *Driver) resolveJobRole(ctx context.Context, log *zap.SugaredLogger, claimedID string, roles []model.JobRole) (*model.JobRole, error) {
	for i := range roles {
		if roles[i].ID == claimedID {
			return &roles[i], nil
		}
	}

	if claimedID != "" {
		log.Infow("extraction returned unknown job role id, falling back", "claimed", claimedID)
	}

	for i := range roles {
		if strings.Contains(strings.ToLower(roles[i].Name), strings.ToLower(genericRoleName)) {
			log.Infow("fallback to company software engineer role", "role", roles[i].Name)
			return &roles[i], nil
		}
	}

	if len(roles) > 0 {
		log.Infow("fallback to first company role", "role", roles[0].Name)
		return &roles[0], nil
	}

	global, err := d.store.JobRoleByFuzzyName(ctx, genericRoleName)
	if err != nil {
		return nil, err
	}
	if global != nil {
		log.Infow("fallback to global software engineer role", "role", global.Name)
		return global, nil
	}

	return nil, nil
}
