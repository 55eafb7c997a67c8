package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/utils/mailing"
	"Smart-Grocery-Agent/pkg/pantry"

	"github.com/rs/zerolog"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Smart Grocery Agent</h2>
<p>Pantry report for {{.Date}}</p>
{{if .Alerts}}<h3>Expiry alerts</h3>
<ul>{{range .Alerts}}<li>{{.}}</li>{{end}}</ul>
{{end}}{{if .Restock}}<h3>Restock suggestions</h3>
<ul>{{range .Restock}}<li>{{.}}</li>{{end}}</ul>
{{end}}`))

type (
	NotifyService interface {
		SendDigest(ctx context.Context) (domain.DigestResponse, error)
	}

	notifyService struct {
		pantry    pantry.PantryService
		mailer    mailing.Mailer
		recipient string
		log       zerolog.Logger
	}
)

func NewNotifyService(pantryService pantry.PantryService, mailer mailing.Mailer, recipient string, log zerolog.Logger) NotifyService {
	return &notifyService{
		pantry:    pantryService,
		mailer:    mailer,
		recipient: recipient,
		log:       log.With().Str("component", "notify").Logger(),
	}
}

// SendDigest mails the current notifications. Nothing is sent when there
// are no alerts and no restock suggestions.
func (s *notifyService) SendDigest(ctx context.Context) (domain.DigestResponse, error) {
	if s.recipient == "" {
		return domain.DigestResponse{}, domain.ErrNotificationRecipient
	}

	notifications := s.pantry.GetNotifications(ctx)
	response := domain.DigestResponse{Recipient: s.recipient, Total: notifications.Total}
	if notifications.Total == 0 {
		s.log.Info().Msg("nothing to report, digest skipped")
		return response, nil
	}

	date := notifications.ReferenceDate.Format(entities.DateLayout)
	var body bytes.Buffer
	err := digestTemplate.Execute(&body, struct {
		Date    string
		Alerts  []string
		Restock []string
	}{date, notifications.ExpiryAlerts, notifications.RestockSuggestions})
	if err != nil {
		return domain.DigestResponse{}, err
	}

	subject := fmt.Sprintf("Pantry report %s: %d notifications", date, notifications.Total)
	if err := s.mailer.SendMail(s.recipient, subject, body.String()); err != nil {
		return domain.DigestResponse{}, fmt.Errorf("send digest: %w", err)
	}

	response.Sent = true
	s.log.Info().Str("recipient", s.recipient).Int("total", notifications.Total).Msg("digest sent")
	return response, nil
}
