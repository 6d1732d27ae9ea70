package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/utils"
)

type sendgridEmailService struct {
	client      *sendgrid.Client
	from        *mail.Email
	frontendURL string
}

func NewEmailService(apiKey, fromEmail, fromName, frontendURL string) EmailService {
	return &sendgridEmailService{
		client:      sendgrid.NewSendClient(apiKey),
		from:        mail.NewEmail(fromName, fromEmail),
		frontendURL: frontendURL,
	}
}

func (s *sendgridEmailService) send(ctx context.Context, to *mail.Email, subject, plain, html string) error {
	message := mail.NewSingleEmail(s.from, subject, to, plain, html)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	logger.Debug("email sent", "to", to.Address, "subject", subject)
	return nil
}

func (s *sendgridEmailService) SendVerificationEmail(ctx context.Context, email, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	plain := fmt.Sprintf("Hi %s,\n\nPlease verify your email address by visiting:\n%s\n", name, link)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Please verify your email address by clicking <a href="%s">here</a>.</p>`, name, link)
	return s.send(ctx, mail.NewEmail(name, email), "Verify your email address", plain, html)
}

func (s *sendgridEmailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	plain := fmt.Sprintf("Hi %s,\n\nA password reset was requested for your account. Reset it here:\n%s\n\nThe link expires in one hour. If you did not request this, ignore this email.\n", name, link)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>A password reset was requested for your account. <a href="%s">Reset your password</a>.</p><p>The link expires in one hour. If you did not request this, ignore this email.</p>`, name, link)
	return s.send(ctx, mail.NewEmail(name, email), "Reset your password", plain, html)
}

func (s *sendgridEmailService) SendBookingStatusNotification(ctx context.Context, email, name, vehicleName string, status domain.BookingStatus, totalPriceCents int32) error {
	subject := fmt.Sprintf("Your booking is now %s", status)
	plain := fmt.Sprintf("Hi %s,\n\nYour booking for %s is now %s. Total price: %s.\n", name, vehicleName, status, utils.FormatCents(totalPriceCents))
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Your booking for <strong>%s</strong> is now <strong>%s</strong>. Total price: %s.</p>`, name, vehicleName, status, utils.FormatCents(totalPriceCents))
	return s.send(ctx, mail.NewEmail(name, email), subject, plain, html)
}
