package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func smtpDialer() (*gomail.Dialer, string, error) {
	host := os.Getenv("SMTP_HOST")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = username
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	if host == "" || username == "" {
		return nil, "", fmt.Errorf("SMTP is not configured")
	}

	return gomail.NewDialer(host, port, username, password), from, nil
}

// SendEmail sends an HTML email using the configured SMTP account
func SendEmail(to, subject, body string) error {
	dialer, from, err := smtpDialer()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP sends a verification OTP via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>%s Verification</h2>
		<p>Your one-time password is:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>This code expires in 10 minutes.</p>`, AppName, otp)
	return SendEmail(to, AppName+" - Verify your email", body)
}

// NotifyEnquiry forwards a new enquiry to the support address.
// Best-effort: callers log and ignore the error.
func NotifyEnquiry(name, email, message string) error {
	support := os.Getenv("SUPPORT_EMAIL")
	if support == "" {
		return fmt.Errorf("SUPPORT_EMAIL is not configured")
	}
	body := fmt.Sprintf(`
		<h3>New enquiry from %s</h3>
		<p>Reply to: %s</p>
		<p>%s</p>`, name, email, message)
	return SendEmail(support, "New enquiry - "+name, body)
}
