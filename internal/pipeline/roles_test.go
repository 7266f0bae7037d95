package pipeline

import (
	"context"
	"testing"

	"github.com/naval41/discord-application/pkg/model"
	"go.uber.org/zap"
)

func rolesDriver(store *memStore) *Driver {
	return NewDriver(&stubSource{}, &stubExtractor{}, store, newMemVisited(), &stubNotifier{}, 5, 50, zap.NewNop().Sugar())
}

func TestResolveJobRoleChain(t *testing.T) {
	companyRoles := []model.JobRole{
		{ID: "r1", Name: "Data Scientist"},
		{ID: "r2", Name: "Senior Software Engineer"},
		{ID: "r3", Name: "Product Manager"},
	}

	cases := []struct {
		name       string
		claimedID  string
		roles      []model.JobRole
		globalRole *model.JobRole
		wantID     string
		wantNil    bool
	}{
		{
			name:      "valid claimed id wins",
			claimedID: "r3",
			roles:     companyRoles,
			wantID:    "r3",
		},
		{
			name:      "invalid id falls back to software engineer role",
			claimedID: "bogus",
			roles:     companyRoles,
			wantID:    "r2",
		},
		{
			name:      "no software engineer role falls back to first role",
			claimedID: "bogus",
			roles: []model.JobRole{
				{ID: "r1", Name: "Data Scientist"},
				{ID: "r3", Name: "Product Manager"},
			},
			wantID: "r1",
		},
		{
			name:       "no company roles falls back to global lookup",
			claimedID:  "bogus",
			roles:      nil,
			globalRole: &model.JobRole{ID: "r-global", Name: "Software Engineer"},
			wantID:     "r-global",
		},
		{
			name:      "nothing resolvable abandons",
			claimedID: "bogus",
			roles:     nil,
			wantNil:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			store.globalRole = tc.globalRole
			d := rolesDriver(store)

			role, err := d.resolveJobRole(context.Background(), d.logger, tc.claimedID, tc.roles)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantNil {
				if role != nil {
					t.Fatalf("expected abandonment, got role %q", role.ID)
				}
				return
			}
			if role == nil {
				t.Fatalf("expected role %q, got nil", tc.wantID)
			}
			if role.ID != tc.wantID {
				t.Fatalf("expected role %q, got %q", tc.wantID, role.ID)
			}
		})
	}
}
