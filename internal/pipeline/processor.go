package pipeline

import (
	"context"
	"errors"
	"sort"
	"time"

	"inboxzero/internal/cache"
	"inboxzero/internal/classify"
	"inboxzero/internal/models"
	"inboxzero/internal/priority"
	"inboxzero/internal/suggest"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// EmailFetcher pulls a user's recent inbox messages.
type EmailFetcher interface {
	FetchEmails(ctx context.Context, token *oauth2.Token, maxResults int) ([]models.Email, error)
}

// IntentClassifier extracts intent and constraints from a single email.
type IntentClassifier interface {
	Classify(ctx context.Context, email models.Email, prefs models.UserPreferences) (*models.Analysis, error)
}

// AvailabilityResolver finds free calendar slots on the given dates.
type AvailabilityResolver interface {
	ResolveAvailability(ctx context.Context, token *oauth2.Token, dates []string) ([]models.CalendarAvailability, error)
}

// Deduper remembers which emails have already been processed for a user.
// Checking and marking are separate so an email is only recorded as seen
// once it has actually been classified and persisted.
type Deduper interface {
	Seen(ctx context.Context, userID, emailID string) (bool, error)
	MarkSeen(ctx context.Context, userID, emailID string) error
}

// RecordStore persists processed emails and their suggestions.
type RecordStore interface {
	SaveEmail(ctx context.Context, userID string, email models.Email, analysis *models.Analysis, score int, action string) error
	SaveSuggestions(ctx context.Context, emailID string, suggestions []models.Suggestion) error
	LoadPreferences(ctx context.Context, userID string) (models.UserPreferences, error)
}

// Processor runs the full inbox pipeline: fetch, dedup, classify, score,
// resolve availability, generate suggestions, persist.
type Processor struct {
	fetcher       EmailFetcher
	classifier    IntentClassifier
	availability  AvailabilityResolver
	dedup         Deduper
	store         RecordStore
	prefsCache    *cache.Preferences
	logger        zerolog.Logger
	classifyDelay time.Duration
}

// NewProcessor wires the pipeline together. classifyDelayMs paces the
// classification calls to stay under the LLM provider's rate limits.
func NewProcessor(fetcher EmailFetcher, classifier IntentClassifier, availability AvailabilityResolver, dedup Deduper, store RecordStore, classifyDelayMs int, logger zerolog.Logger) *Processor {
	return &Processor{
		fetcher:       fetcher,
		classifier:    classifier,
		availability:  availability,
		dedup:         dedup,
		store:         store,
		prefsCache:    cache.NewPreferences(cache.DefaultTTL),
		logger:        logger,
		classifyDelay: time.Duration(classifyDelayMs) * time.Millisecond,
	}
}

// InvalidatePreferences drops a user's cached preferences, used after a
// preferences update so the next run sees fresh values.
func (p *Processor) InvalidatePreferences(userID string) {
	p.prefsCache.Invalidate(userID)
}

// Process runs the pipeline over a user's inbox. Emails are processed
// sequentially, oldest fetch order preserved, and results are returned
// ranked by score descending. A provider rate limit halts the batch but the
// results accumulated so far are still returned and persisted.
func (p *Processor) Process(ctx context.Context, token *oauth2.Token, userID string, maxEmails int) (*models.ProcessInboxResponse, error) {
	runID := uuid.New().String()
	logger := p.logger.With().Str("run_id", runID).Str("user_id", userID).Logger()

	prefs, err := p.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	emails, err := p.fetcher.FetchEmails(ctx, token, maxEmails)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("fetched", len(emails)).Msg("fetched inbox emails")

	resp := &models.ProcessInboxResponse{
		Results:       []models.EmailResult{},
		EmailsFetched: len(emails),
	}

	for i, email := range emails {
		seen, err := p.dedup.Seen(ctx, userID, email.ID)
		if err != nil {
			logger.Warn().Err(err).Str("email_id", email.ID).Msg("dedup check failed, processing anyway")
		} else if seen {
			resp.EmailsSkipped++
			continue
		}

		if i > 0 && p.classifyDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.classifyDelay):
			}
		}

		result, rateLimited := p.processOne(ctx, logger, token, email, prefs)
		if rateLimited {
			resp.RateLimited = true
			logger.Warn().Int("processed", len(resp.Results)).Msg("rate limited, halting batch with partial results")
			break
		}

		// Mark seen only after a successful persist. An email whose save
		// failed (or that the batch never reached) stays new, so the next
		// run picks it up again.
		if err := p.persist(ctx, userID, result); err != nil {
			logger.Error().Err(err).Str("email_id", email.ID).Msg("failed to persist result")
		} else if err := p.dedup.MarkSeen(ctx, userID, email.ID); err != nil {
			logger.Warn().Err(err).Str("email_id", email.ID).Msg("failed to mark email seen")
		}
		resp.Results = append(resp.Results, result)
	}

	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].Score > resp.Results[j].Score
	})

	logger.Info().
		Int("processed", len(resp.Results)).
		Int("skipped", resp.EmailsSkipped).
		Bool("rate_limited", resp.RateLimited).
		Msg("inbox run complete")
	return resp, nil
}

// processOne classifies and scores a single email. Classification failures
// degrade to a fallback analysis at a fixed low score instead of dropping
// the email; only a rate limit stops the batch.
func (p *Processor) processOne(ctx context.Context, logger zerolog.Logger, token *oauth2.Token, email models.Email, prefs models.UserPreferences) (models.EmailResult, bool) {
	result := models.EmailResult{Email: email}

	analysis, err := p.classifier.Classify(ctx, email, prefs)
	if err != nil {
		if errors.Is(err, classify.ErrRateLimited) {
			return result, true
		}
		logger.Warn().Err(err).Str("email_id", email.ID).Msg("classification failed, using fallback")
		analysis = classify.Fallback(email)
		result.ClassifyError = err.Error()
		result.Score = classify.FallbackScore
	} else {
		result.Score = priority.Score(email, analysis, prefs)
	}
	analysis.Priority = priority.ScoreToPriority(result.Score)
	result.Analysis = analysis
	result.DefinitiveAction = priority.SynthesizeAction(email, analysis, analysis.Priority, prefs)

	var availabilities []models.CalendarAvailability
	if analysis.Intent.Canonical() == models.IntentScheduleCall && len(analysis.Constraints.Dates) > 0 {
		availabilities, err = p.availability.ResolveAvailability(ctx, token, analysis.Constraints.Dates)
		if err != nil {
			logger.Warn().Err(err).Str("email_id", email.ID).Msg("availability lookup failed")
		}
	}

	result.Suggestions = suggest.Generate(email, analysis, availabilities)
	return result, false
}

func (p *Processor) persist(ctx context.Context, userID string, result models.EmailResult) error {
	if err := p.store.SaveEmail(ctx, userID, result.Email, result.Analysis, result.Score, result.DefinitiveAction); err != nil {
		return err
	}
	return p.store.SaveSuggestions(ctx, result.Email.ID, result.Suggestions)
}

func (p *Processor) preferences(ctx context.Context, userID string) (models.UserPreferences, error) {
	if prefs, ok := p.prefsCache.Get(userID); ok {
		return prefs, nil
	}
	prefs, err := p.store.LoadPreferences(ctx, userID)
	if err != nil {
		return models.UserPreferences{}, err
	}
	p.prefsCache.Set(userID, prefs)
	return prefs, nil
}
