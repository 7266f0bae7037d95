package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/naval41/discord-application/pkg/model"
)

// systemUserID is the product user all scraped interviews are attributed
// to.
const systemUserID = "1"

// CreateInterviewWithRounds inserts the interview and all of its rounds
// in one transaction, so a mid-write failure cannot leave an interview
// without its reported rounds. Rounds are written in extracted order.
func (r *Repository) CreateInterviewWithRounds(ctx context.Context, interview *model.Interview, rounds []model.InterviewRound) (uuid.UUID, error) {
	interviewID := uuid.New()

	err := r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `
INSERT INTO public."Interview" (
	id, "companyId", "userId", "jobRoleId", slug, title, location, date, difficulty,
	"noOfRounds", "interviewProcess", "preparationSources", "overallRating",
	"isAnonymous", status, "offerStatus", "createdAt", "updatedAt", "createdBy", "updatedBy"
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW(), 'system', 'system'
)`
		_, err := tx.Exec(ctx, q,
			interviewID.String(), interview.CompanyID.String(), systemUserID, interview.JobRoleID,
			interview.Slug, interview.Title, interview.Location, interview.Date, interview.Difficulty,
			interview.NoOfRounds, interview.InterviewProcess, interview.PreparationSources,
			interview.OverallRating, interview.IsAnonymous, interview.Status, interview.OfferStatus,
		)
		if err != nil {
			return fmt.Errorf("insert interview: %w", err)
		}

		const roundQ = `
INSERT INTO public."InterviewRound" (
	id, "interviewId", name, duration, difficulty, experience, "keyTakeaways",
	"orderIndex", "createdAt", "updatedAt"
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

		for _, round := range rounds {
			_, err := tx.Exec(ctx, roundQ,
				uuid.New().String(), interviewID.String(), round.Name, round.Duration,
				round.Difficulty, round.Experience, round.KeyTakeaways, round.OrderIndex,
			)
			if err != nil {
				return fmt.Errorf("insert interview round %q: %w", round.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return interviewID, nil
}
