package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/crestfin/crm-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	// SendAbscondingAlert notifies HR that a pending leave request was
	// auto-converted to absconding.
	SendAbscondingAlert(to, employeeName, submittedAt string, daysPending int) error

	// SendOverrideNotice notifies HR that an attendance record was
	// manually overridden.
	SendOverrideNotice(to, employeeName, date, oldStatus, newStatus, adminName, comment string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type abscondingEmailData struct {
	EmployeeName string
	SubmittedAt  string
	DaysPending  int
}

func (s *emailServiceImpl) SendAbscondingAlert(to, employeeName, submittedAt string, daysPending int) error {
	data := abscondingEmailData{
		EmployeeName: employeeName,
		SubmittedAt:  submittedAt,
		DaysPending:  daysPending,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "absconding_alert.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave request auto-converted: %s", employeeName), body.String())
}

type overrideEmailData struct {
	EmployeeName string
	Date         string
	OldStatus    string
	NewStatus    string
	AdminName    string
	Comment      string
}

func (s *emailServiceImpl) SendOverrideNotice(to, employeeName, date, oldStatus, newStatus, adminName, comment string) error {
	data := overrideEmailData{
		EmployeeName: employeeName,
		Date:         date,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		AdminName:    adminName,
		Comment:      comment,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "override_notice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Attendance override: %s on %s", employeeName, date), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
