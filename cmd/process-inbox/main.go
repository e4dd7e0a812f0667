package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"inboxzero/internal/auth"
	"inboxzero/internal/calendar"
	"inboxzero/internal/classify"
	"inboxzero/internal/config"
	"inboxzero/internal/database"
	"inboxzero/internal/dedup"
	"inboxzero/internal/digest"
	"inboxzero/internal/gmail"
	"inboxzero/internal/pipeline"
)

func main() {
	// Parse command line flags
	accessToken := flag.String("token", "", "Google OAuth access token with Gmail and Calendar scopes")
	userID := flag.String("user", "", "User identifier for preferences and persistence")
	maxEmails := flag.Int("max", 20, "Maximum number of emails to process")
	digestTo := flag.String("digest", "", "Send a digest of high priority actions to this address")
	asJSON := flag.Bool("json", false, "Print results as JSON instead of a summary")
	flag.Parse()

	if *accessToken == "" || *userID == "" {
		fmt.Println("Usage:")
		fmt.Println("  Process inbox:   process-inbox -token <oauth-token> -user <user-id>")
		fmt.Println("  Limit batch:     process-inbox -token <oauth-token> -user <user-id> -max 10")
		fmt.Println("  Email a digest:  process-inbox -token <oauth-token> -user <user-id> -digest me@example.com")
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()
	logger := cfg.SetupLogger()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := database.NewStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.CreateTables(ctx); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}
	cancel()

	classifier, err := classify.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create classifier: %v", err)
	}

	oauthConfig := auth.GoogleOAuthConfig(cfg)
	processor := pipeline.NewProcessor(
		gmail.NewFetcher(oauthConfig, logger),
		classifier,
		calendar.NewResolver(oauthConfig, cfg.WorkdayStart, cfg.WorkdayEnd, cfg.CalendarDelayMs, logger),
		dedup.NewFilter(nil),
		store,
		cfg.ClassifyDelayMs,
		logger,
	)

	token := auth.TokenFromAccess(*accessToken)
	resp, err := processor.Process(context.Background(), token, *userID, *maxEmails)
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode results: %v", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("Fetched %d emails, processed %d, skipped %d\n", resp.EmailsFetched, len(resp.Results), resp.EmailsSkipped)
		if resp.RateLimited {
			fmt.Println("Stopped early: LLM rate limit reached, partial results above")
		}
		for _, result := range resp.Results {
			fmt.Printf("\n[%3d] %s\n", result.Score, result.Email.Subject)
			fmt.Printf("      From: %s <%s>\n", result.Email.FromName, result.Email.From)
			fmt.Printf("      Action: %s\n", result.DefinitiveAction)
			for _, suggestion := range result.Suggestions {
				fmt.Printf("      - (%s) %s\n", suggestion.Type, suggestion.Title)
			}
		}
	}

	if *digestTo != "" {
		svc := digest.NewService(cfg.SendGridAPIKey, cfg.DigestFrom)
		if err := svc.SendDigest(*digestTo, resp.Results); err != nil {
			log.Fatalf("Failed to send digest: %v", err)
		}
		fmt.Printf("\nDigest sent to %s\n", *digestTo)
	}
}
