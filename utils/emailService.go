package utils

import (
	"fmt"
	"log"

	"skillora/config"
	"skillora/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers a single transactional mail through SendGrid. With no
// API key configured the mail is skipped, which keeps local and test runs
// offline.
func sendEmail(to *mail.Email, subject, plain, html string) error {
	cfg := config.AppConfig
	if cfg.SendGridApiKey == "" {
		log.Printf("SendGrid disabled, skipping email %q to %s", subject, to.Address)
		return nil
	}

	from := mail.NewEmail("Skillora", cfg.EmailSender)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(cfg.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user. Best-effort.
func SendWelcomeEmail(user models.User) {
	to := mail.NewEmail(user.FirstName+" "+user.LastName, user.Email)
	subject := "Welcome to Skillora"
	plain := fmt.Sprintf("Hi %s, your Skillora account is ready. Browse the catalog and start learning!", user.FirstName)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your Skillora account is ready. Browse the catalog and start learning!</p>", user.FirstName)

	if err := sendEmail(to, subject, plain, html); err != nil {
		log.Printf("Error sending welcome email to %s: %v", user.Email, err)
	}
}

// SendEnrollmentEmail confirms a new enrollment. Best-effort.
func SendEnrollmentEmail(user models.User, course models.Course) {
	to := mail.NewEmail(user.FirstName+" "+user.LastName, user.Email)
	subject := fmt.Sprintf("You're enrolled in %s", course.Title)
	plain := fmt.Sprintf("Hi %s, you are enrolled in %s (%s). Happy learning!",
		user.FirstName, course.Title, FormatCents(course.Price))
	html := fmt.Sprintf("<p>Hi %s,</p><p>You are enrolled in <b>%s</b> (%s). Happy learning!</p>",
		user.FirstName, course.Title, FormatCents(course.Price))

	if err := sendEmail(to, subject, plain, html); err != nil {
		log.Printf("Error sending enrollment email to %s: %v", user.Email, err)
	}
}
