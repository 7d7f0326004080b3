package service

import (
	"context"
	"fmt"

	"edufleet-backend/internal/logger"

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

	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func cents(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

func (s *emailService) SendWalletCreditReceipt(ctx context.Context, email, name string, amountCents, balanceCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour wallet was credited with %s. Your new balance is %s.\n\nBest regards,\nThe EduFleet Team",
		name, cents(amountCents), cents(balanceCents))
	return s.send(email, name, "Wallet Credited", body)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, reference string, totalPriceCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking %s was created. Total price: %s. Please pay from your wallet to confirm it.\n\nBest regards,\nThe EduFleet Team",
		name, reference, cents(totalPriceCents))
	return s.send(email, name, "Booking Created", body)
}

func (s *emailService) SendBookingReceipt(ctx context.Context, email, name, reference string, amountCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %s for booking %s.\n\nBest regards,\nThe EduFleet Team",
		name, cents(amountCents), reference)
	return s.send(email, name, "Payment Received", body)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email, name, reference string, totalPriceCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nBooking %s is still awaiting payment of %s. Unpaid bookings are released automatically.\n\nBest regards,\nThe EduFleet Team",
		name, reference, cents(totalPriceCents))
	return s.send(email, name, "Payment Reminder", body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, name, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking %s has passed its rental end time. Please return the car or extend the booking.\n\nBest regards,\nThe EduFleet Team",
		name, reference)
	return s.send(email, name, "Booking Overdue", body)
}

func (s *emailService) SendSeatPlanPublished(ctx context.Context, email, studentName, examName, roomNumber, row string, seatNumber int32) error {
	body := fmt.Sprintf("Hello,\n\nThe seat plan for %s is published. %s is assigned seat %d in room %s, row %s.\n\nBest regards,\nThe EduFleet Team",
		examName, studentName, seatNumber, roomNumber, row)
	return s.send(email, studentName, fmt.Sprintf("Seat Plan - %s", examName), body)
}
