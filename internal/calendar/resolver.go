// Package calendar resolves requested dates against the user's Google
// Calendar and returns the free windows large enough for a call.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"inboxzero/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// maxDatesPerRequest bounds external calls per email.
	maxDatesPerRequest = 3
	// defaultInterCallDelay paces consecutive calendar API calls.
	defaultInterCallDelay = 200 * time.Millisecond
)

// Resolver checks availability on the user's primary calendar.
type Resolver struct {
	oauthConfig    *oauth2.Config
	logger         zerolog.Logger
	startHHMM      string
	endHHMM        string
	interCallDelay time.Duration
}

// NewResolver creates a calendar resolver with a working-hours window.
// delayMs paces consecutive API calls; non-positive values use the default.
func NewResolver(oauthConfig *oauth2.Config, startHHMM, endHHMM string, delayMs int, logger zerolog.Logger) *Resolver {
	if startHHMM == "" {
		startHHMM = "09:00"
	}
	if endHHMM == "" {
		endHHMM = "17:00"
	}
	delay := time.Duration(delayMs) * time.Millisecond
	if delayMs <= 0 {
		delay = defaultInterCallDelay
	}
	return &Resolver{
		oauthConfig:    oauthConfig,
		logger:         logger,
		startHHMM:      startHHMM,
		endHHMM:        endHHMM,
		interCallDelay: delay,
	}
}

// service creates a Calendar client bound to the user's token.
func (r *Resolver) service(ctx context.Context, token *oauth2.Token) (*gcalendar.Service, error) {
	client := r.oauthConfig.Client(ctx, token)
	return gcalendar.NewService(ctx, option.WithHTTPClient(client))
}

// ResolveAvailability checks the first few requested dates and returns free
// windows of at least MinSlotDuration within working hours. Dates that fail
// or have no qualifying slot are silently skipped; the remaining dates are
// still processed.
func (r *Resolver) ResolveAvailability(ctx context.Context, token *oauth2.Token, dates []string) ([]models.CalendarAvailability, error) {
	svc, err := r.service(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if len(dates) > maxDatesPerRequest {
		dates = dates[:maxDatesPerRequest]
	}

	var availabilities []models.CalendarAvailability
	for i, date := range dates {
		if i > 0 {
			time.Sleep(r.interCallDelay)
		}

		availability, err := r.checkDate(ctx, svc, date)
		if err != nil {
			r.logger.Warn().Err(err).Str("date", date).Msg("Skipping date, availability check failed")
			continue
		}
		if len(availability.AvailableSlots) == 0 {
			continue
		}
		availabilities = append(availabilities, availability)
	}

	return availabilities, nil
}

// checkDate lists the day's events and computes the free gaps.
func (r *Resolver) checkDate(ctx context.Context, svc *gcalendar.Service, date string) (models.CalendarAvailability, error) {
	dayStart, dayEnd, err := workingWindow(date, r.startHHMM, r.endHHMM, time.Local)
	if err != nil {
		return models.CalendarAvailability{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	resp, err := svc.Events.List("primary").
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return models.CalendarAvailability{}, fmt.Errorf("failed to list events: %w", err)
	}

	busy := make([]Interval, 0, len(resp.Items))
	for _, event := range resp.Items {
		// All-day events have no DateTime and do not block call slots.
		if event.Start == nil || event.Start.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, event.Start.DateTime)
		if err != nil {
			continue
		}
		end := start
		if event.End != nil && event.End.DateTime != "" {
			if parsed, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				end = parsed
			}
		}
		busy = append(busy, Interval{Start: start, End: end})
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	return models.CalendarAvailability{
		Date:           date,
		AvailableSlots: FreeSlots(busy, dayStart, dayEnd, MinSlotDuration),
	}, nil
}
