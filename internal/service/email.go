package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/gomail.v2"

	"leasehub-backend/internal/domain"
	"leasehub-backend/internal/logger"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      *slog.Logger
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
		log:      logger.WithService("email"),
	}
}

func (s *emailService) SendSubmissionReceipt(ctx context.Context, email, name, propertyName string) error {
	subject := "Your rental application has been submitted"
	body := fmt.Sprintf("Hello %s,\n\nWe have received your rental application", name)
	if propertyName != "" {
		body += fmt.Sprintf(" for %s", propertyName)
	}
	body += ".\n\nYour details have been passed to the reviewing agent. We will email you when the status changes.\n\nBest regards,\nThe LeaseHub Team"
	return s.send(email, subject, body)
}

func (s *emailService) SendStatusChangeNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	subject := "Rental application status update"
	body := fmt.Sprintf("Hello %s,\n\nYour rental application status has been updated to: %s.\n\nBest regards,\nThe LeaseHub Team", name, status)
	return s.send(email, subject, body)
}

func (s *emailService) SendIncompleteProfileReminder(ctx context.Context, email, name string, overall int) error {
	subject := "Finish your rental profile"
	body := fmt.Sprintf("Hello %s,\n\nYour rental profile is %d%% complete. A complete profile is required before an application can be submitted for review.\n\nLog in to finish the remaining sections.\n\nBest regards,\nThe LeaseHub Team", name, overall)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	s.log.Info("email sent", "to", to, "subject", subject)
	return nil
}
