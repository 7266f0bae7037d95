package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naval41/discord-application/internal/extract"
	"github.com/naval41/discord-application/internal/notify"
	"github.com/naval41/discord-application/pkg"
	"github.com/naval41/discord-application/pkg/model"
	"go.uber.org/zap"
)

// Source pages the remote discussion listing and fetches detail-page
// content.
type Source interface {
	FetchPosts(ctx context.Context, skip, first int) (*model.PostPage, error)
	FetchPostContent(ctx context.Context, topicID string) (string, error)
}

// Extractor runs the two extraction stages.
type Extractor interface {
	ExtractCompanyInfo(ctx context.Context, title, content string) (*extract.CompanyInfo, error)
	ExtractInterviewDetails(ctx context.Context, title, content string, roles []model.JobRole) (*extract.InterviewDetails, error)
}

// Store is the persistence surface the driver needs.
type Store interface {
	GetOrCreateCompany(ctx context.Context, name, slug string) (*model.Company, error)
	JobRolesForCompany(ctx context.Context, companyID uuid.UUID) ([]model.JobRole, error)
	JobRoleByFuzzyName(ctx context.Context, name string) (*model.JobRole, error)
	CreateInterviewWithRounds(ctx context.Context, interview *model.Interview, rounds []model.InterviewRound) (uuid.UUID, error)
}

// Visited is the idempotency ledger.
type Visited interface {
	IsVisited(ctx context.Context, postID string) (bool, error)
	MarkVisited(ctx context.Context, postID string) error
}

// Notifier delivers the digest; strictly best-effort.
type Notifier interface {
	SendEmbed(ctx context.Context, embed notify.Embed) error
}

// Driver carries each post end-to-end through the per-post state machine,
// one post at a time, in listing order.
type Driver struct {
	source    Source
	extractor Extractor
	store     Store
	visited   Visited
	notifier  Notifier
	logger    *zap.SugaredLogger

	maxPages int
	pageSize int
}

func NewDriver(source Source, extractor Extractor, store Store, visited Visited, notifier Notifier, maxPages, pageSize int, logger *zap.SugaredLogger) *Driver {
	return &Driver{
		source:    source,
		extractor: extractor,
		store:     store,
		visited:   visited,
		notifier:  notifier,
		logger:    logger,
		maxPages:  maxPages,
		pageSize:  pageSize,
	}
}

// Run executes one bounded sweep: up to maxPages pages, stopping early on
// an empty page or when the source reports no further pages. A source
// error ends the sweep; per-post failures never do.
func (d *Driver) Run(ctx context.Context) (*SweepStats, error) {
	stats := &SweepStats{StartedAt: time.Now()}
	defer func() { stats.FinishedAt = time.Now() }()

	for page := 0; page < d.maxPages; page++ {
		skip := page * d.pageSize

		pageData, err := d.source.FetchPosts(ctx, skip, d.pageSize)
		if err != nil {
			return stats, fmt.Errorf("fetch posts page %d: %w", page+1, err)
		}
		if len(pageData.Posts) == 0 {
			d.logger.Infow("no posts returned, stopping sweep", "page", page+1)
			break
		}
		stats.PagesFetched++
		d.logger.Infow("processing page", "page", page+1, "posts", len(pageData.Posts))

		for _, post := range pageData.Posts {
			out := d.processPost(ctx, post)
			stats.record(out)
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
		}

		if !pageData.HasNextPage {
			break
		}
	}
	return stats, nil
}

type outcome int

const (
	outcomeSkippedVisited outcome = iota
	outcomeNotInterview
	outcomeNoCompany
	outcomeNoRole
	outcomePersisted
	outcomeRetryLater
)

// processPost walks one post through the state machine. Posts classified
// as irrelevant (or unclassifiable) are marked visited: that judgment is
// final and reprocessing would not change it. Detail-extraction and
// persistence failures leave the post unmarked so the next sweep retries
// it.
func (d *Driver) processPost(ctx context.Context, post model.Post) outcome {
	log := d.logger.With("post", post.UUID, "title", post.Title)

	seen, err := d.visited.IsVisited(ctx, post.UUID)
	if err != nil {
		log.Errorw("visited check failed", "err", err)
		return outcomeRetryLater
	}
	if seen {
		return outcomeSkippedVisited
	}

	content, err := d.source.FetchPostContent(ctx, post.TopicID.String())
	if err != nil {
		log.Warnw("content fetch failed, using summary", "err", err)
	}
	if content == "" {
		content = post.Summary
	}

	info, err := d.extractor.ExtractCompanyInfo(ctx, post.Title, content)
	if err != nil {
		// A permanently unparseable post would retry forever otherwise;
		// classification failure is treated like a negative result.
		log.Warnw("classification failed, marking visited", "err", err)
		d.markVisited(ctx, post.UUID)
		return outcomeNotInterview
	}
	if !info.IsInterviewExperience {
		log.Infow("not an interview experience")
		d.markVisited(ctx, post.UUID)
		return outcomeNotInterview
	}
	if info.CompanyName == "" {
		log.Infow("interview experience without a company name")
		d.markVisited(ctx, post.UUID)
		return outcomeNoCompany
	}

	company, err := d.store.GetOrCreateCompany(ctx, info.CompanyName, pkg.GenerateSlug(info.CompanyName))
	if err != nil {
		log.Errorw("get or create company failed", "err", err)
		return outcomeRetryLater
	}

	roles, err := d.store.JobRolesForCompany(ctx, company.CompanyID)
	if err != nil {
		log.Errorw("job role lookup failed", "err", err)
		return outcomeRetryLater
	}

	details, err := d.extractor.ExtractInterviewDetails(ctx, post.Title, content, roles)
	if err != nil {
		// transient: leave unmarked so a later sweep retries
		log.Warnw("detail extraction failed, will retry next sweep", "err", err)
		return outcomeRetryLater
	}

	role, err := d.resolveJobRole(ctx, log, details.JobRoleID, roles)
	if err != nil {
		log.Errorw("role resolution failed", "err", err)
		return outcomeRetryLater
	}
	if role == nil {
		// intentionally lossy: nothing to attach the interview to
		log.Errorw("no job role resolvable, abandoning post", "company", company.Name)
		d.markVisited(ctx, post.UUID)
		return outcomeNoRole
	}

	interview := &model.Interview{
		CompanyID:          company.CompanyID,
		JobRoleID:          role.ID,
		Slug:               post.Slug,
		Title:              post.Title,
		Location:           details.Location,
		Date:               time.Now(),
		Difficulty:         details.Difficulty,
		NoOfRounds:         details.NumberOfRounds,
		InterviewProcess:   details.InterviewProcess,
		PreparationSources: details.PreparationSource,
		OverallRating:      details.OverallRating,
		IsAnonymous:        details.IsAnonymous,
		Status:             model.InterviewStatusPublished,
		OfferStatus:        details.OfferStatus,
	}

	rounds := make([]model.InterviewRound, 0, len(details.Rounds))
	for _, r := range details.Rounds {
		rounds = append(rounds, model.InterviewRound{
			Name:         r.Name,
			Duration:     r.Duration,
			Difficulty:   r.Difficulty,
			Experience:   r.Experience,
			KeyTakeaways: r.KeyTakeaways,
			OrderIndex:   r.Sequence,
		})
	}

	interviewID, err := d.store.CreateInterviewWithRounds(ctx, interview, rounds)
	if err != nil {
		log.Errorw("persist interview failed, will retry next sweep", "err", err)
		return outcomeRetryLater
	}
	log.Infow("interview persisted", "interview", interviewID, "company", company.Name, "role", role.Name, "rounds", len(rounds))

	d.notifyInterview(ctx, log, interviewID, post, company, role, details, rounds)

	d.markVisited(ctx, post.UUID)
	return outcomePersisted
}

func (d *Driver) notifyInterview(ctx context.Context, log *zap.SugaredLogger, interviewID uuid.UUID, post model.Post, company *model.Company, role *model.JobRole, details *extract.InterviewDetails, rounds []model.InterviewRound) {
	profileName := role.ProfileName
	if profileName == "" {
		profileName = "Software Engineering"
	}

	embed, ok := notify.BuildInterviewEmbed(notify.InterviewSummary{
		InterviewID: interviewID,
		Slug:        post.Slug,
		CompanyName: company.Name,
		RoleName:    role.Name,
		ProfileName: profileName,
		Location:    details.Location,
		Difficulty:  details.Difficulty,
		OfferStatus: details.OfferStatus,
		NumRounds:   details.NumberOfRounds,
		Rounds:      rounds,
	}, time.Now())
	if !ok {
		log.Infow("notification skipped by quality gate")
		return
	}

	if err := d.notifier.SendEmbed(ctx, embed); err != nil {
		log.Warnw("notification delivery failed", "err", err)
		return
	}
	log.Infow("notification sent")
}

func (d *Driver) markVisited(ctx context.Context, postID string) {
	if err := d.visited.MarkVisited(ctx, postID); err != nil {
		d.logger.Errorw("mark visited failed", "post", postID, "err", err)
	}
}
