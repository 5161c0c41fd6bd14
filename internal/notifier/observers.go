package notifier

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"article-workflow/internal/domain"
	"article-workflow/internal/metrics"
)

// AuditLogObserver writes one structured audit line per state change.
type AuditLogObserver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewAuditLogObserver creates an AuditLogObserver.
func NewAuditLogObserver(logger *slog.Logger) *AuditLogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogObserver{logger: logger, now: time.Now}
}

func (o *AuditLogObserver) Name() string { return "audit_log" }

func (o *AuditLogObserver) OnStateChange(ctx context.Context, article domain.Article, oldState, newState domain.State, message string) error {
	o.logger.InfoContext(ctx, "Article state changed",
		slog.String("audit", "article_state"),
		slog.Time("at", o.now().UTC()),
		slog.String("article_id", article.ID),
		slog.String("title", article.Title),
		slog.String("old_state", string(oldState)),
		slog.String("new_state", string(newState)),
		slog.String("percentage", article.ApprovalPercentage.StringFixed(2)),
		slog.String("message", message),
	)
	return nil
}

// Email is a rendered notification addressed to an article's author.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers rendered emails.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LogMailer logs emails instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, email Email) error {
	m.logger.InfoContext(ctx, "Email notification",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.Body),
	)
	return nil
}

var emailBody = template.Must(template.New("email").Parse(
	`Your article "{{.Title}}" changed state.
Previous state: {{.OldState}}
New state: {{.NewState}}
Approval: {{.Percentage}}%
{{.Message}}
`))

type emailData struct {
	Title      string
	OldState   domain.State
	NewState   domain.State
	Percentage string
	Message    string
}

// EmailNotificationObserver tells the author about state changes of their article.
type EmailNotificationObserver struct {
	mailer Mailer
}

// NewEmailNotificationObserver creates an EmailNotificationObserver.
func NewEmailNotificationObserver(mailer Mailer) *EmailNotificationObserver {
	return &EmailNotificationObserver{mailer: mailer}
}

func (o *EmailNotificationObserver) Name() string { return "email" }

func (o *EmailNotificationObserver) OnStateChange(ctx context.Context, article domain.Article, oldState, newState domain.State, message string) error {
	var body bytes.Buffer
	err := emailBody.Execute(&body, emailData{
		Title:      article.Title,
		OldState:   oldState,
		NewState:   newState,
		Percentage: article.ApprovalPercentage.StringFixed(2),
		Message:    message,
	})
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	return o.mailer.Send(ctx, Email{
		To:      article.AuthorID,
		Subject: fmt.Sprintf("Your article '%s' changed state", article.Title),
		Body:    body.String(),
	})
}

// MetricsObserver counts state transitions.
type MetricsObserver struct{}

// NewMetricsObserver creates a MetricsObserver.
func NewMetricsObserver() *MetricsObserver { return &MetricsObserver{} }

func (o *MetricsObserver) Name() string { return "metrics" }

func (o *MetricsObserver) OnStateChange(_ context.Context, _ domain.Article, oldState, newState domain.State, _ string) error {
	metrics.ObserveTransition(string(oldState), string(newState))
	return nil
}
