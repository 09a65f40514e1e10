package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendApplicationStatusEmail(ctx context.Context, email, name, opportunityTitle, status, notes string) error {
	subject := fmt.Sprintf("Application update: %s", opportunityTitle)
	body := fmt.Sprintf("Hello %s,\n\nYour application for '%s' is now %s.", name, opportunityTitle, status)
	if notes != "" {
		body += fmt.Sprintf("\n\nNotes from the charity: %s", notes)
	}
	body += "\n\nBest regards,\nThe VolunteerHub Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendInfoRequestEmail(ctx context.Context, email, name, opportunityTitle, message string) error {
	subject := fmt.Sprintf("More information needed: %s", opportunityTitle)
	body := fmt.Sprintf("Hello %s,\n\nThe charity behind '%s' needs more information before reviewing your application:\n\n%s\n\nPlease respond from your applications page.\n\nBest regards,\nThe VolunteerHub Team", name, opportunityTitle, message)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOpportunityStatusEmail(ctx context.Context, email, name, opportunityTitle, status, reason string) error {
	subject := fmt.Sprintf("Opportunity update: %s", opportunityTitle)
	body := fmt.Sprintf("Hello %s,\n\nThe opportunity '%s' is now %s.", name, opportunityTitle, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe VolunteerHub Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOpportunityReminderEmail(ctx context.Context, email, name, opportunityTitle string, startDate string) error {
	subject := fmt.Sprintf("Reminder: %s starts soon", opportunityTitle)
	body := fmt.Sprintf("Hello %s,\n\nA reminder that '%s' starts on %s. See you there!\n\nBest regards,\nThe VolunteerHub Team", name, opportunityTitle, startDate)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendAccountStatusEmail(ctx context.Context, email, name, status, notes string) error {
	subject := "Your VolunteerHub account status"
	body := fmt.Sprintf("Hello %s,\n\nYour account status has been updated to: %s.", name, status)
	if notes != "" {
		body += fmt.Sprintf("\n\nNotes: %s", notes)
	}
	body += "\n\nBest regards,\nThe VolunteerHub Team"
	return s.send(email, name, subject, body)
}
