package digest

import (
	"fmt"
	"strings"
	"time"

	"inboxzero/internal/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service sends daily digest emails summarizing high priority actions via
// SendGrid.
type Service struct {
	apiKey string
	from   string
	titler cases.Caser
}

// NewService creates a digest sender. from defaults to a noreply address.
func NewService(apiKey, from string) *Service {
	if from == "" {
		from = "noreply@inboxzero.app"
	}
	return &Service{
		apiKey: apiKey,
		from:   from,
		titler: cases.Title(language.English),
	}
}

// SendDigest emails the top results of a processing run to the user. Only
// high priority emails make the digest body; the rest are a single count
// line at the bottom.
func (s *Service) SendDigest(recipient string, results []models.EmailResult) error {
	if s.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}

	high := make([]models.EmailResult, 0, len(results))
	for _, r := range results {
		if r.Analysis != nil && r.Analysis.Priority == models.PriorityHigh {
			high = append(high, r)
		}
	}
	if len(high) == 0 {
		return nil
	}

	from := mail.NewEmail("InboxZero", s.from)
	to := mail.NewEmail("", recipient)
	subject := fmt.Sprintf("%d high priority emails need your attention", len(high))

	body := s.buildBody(high, len(results))
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *Service) buildBody(high []models.EmailResult, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your job search digest for %s\n\n", time.Now().Format("Monday, January 2"))

	for i, r := range high {
		fmt.Fprintf(&b, "%d. %s (score %d)\n", i+1, r.Email.Subject, r.Score)
		fmt.Fprintf(&b, "   From: %s <%s>\n", r.Email.FromName, r.Email.From)
		if r.DefinitiveAction != "" {
			fmt.Fprintf(&b, "   Action: %s\n", r.DefinitiveAction)
		}
		for _, suggestion := range r.Suggestions {
			fmt.Fprintf(&b, "   - %s: %s\n", s.typeLabel(suggestion.Type), suggestion.Title)
			if suggestion.Deadline != nil {
				fmt.Fprintf(&b, "     Due %s\n", suggestion.Deadline.Format("Mon Jan 2, 3:04PM"))
			}
		}
		b.WriteString("\n")
	}

	if remaining := total - len(high); remaining > 0 {
		fmt.Fprintf(&b, "Plus %d lower priority emails processed.\n", remaining)
	}
	return b.String()
}

// typeLabel renders a suggestion type as a human heading, e.g.
// "linkedin-followup" becomes "Linkedin Followup".
func (s *Service) typeLabel(t models.SuggestionType) string {
	return s.titler.String(strings.ReplaceAll(string(t), "-", " "))
}
