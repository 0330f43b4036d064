package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for outbound admissions mail
type EmailService interface {
	SendAcceptanceEmail(toEmail, studentName string) error
	SendRejectionEmail(toEmail, studentName string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendAcceptanceEmail sends the admission acceptance notification.
func (s *EmailServiceImpl) SendAcceptanceEmail(toEmail, studentName string) error {
	// Without SMTP credentials, log instead of sending (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("studentName", studentName).
			Msg("SMTP credentials not configured - acceptance email not sent.")
		return nil
	}

	subject := "Congratulations! Your Admission to KRMU"

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #1a365d;">Congratulations %s!</h2>
			<p>We are pleased to inform you that you have been accepted to KRM University.</p>

			<h3 style="color: #1a365d; margin-top: 20px;">Next Steps:</h3>
			<ol>
				<li>Complete your enrollment by visiting the student portal</li>
				<li>Submit any remaining documents</li>
				<li>Pay your tuition fees</li>
			</ol>

			<p style="margin-top: 20px;">If you have any questions, please contact our admissions office.</p>

			<div style="margin-top: 30px; padding: 15px; background-color: #f7fafc; border-left: 4px solid #4299e1;">
				<p><strong>KRM University Admissions Office</strong></p>
				<p>Email: admissions@krmu.edu</p>
				<p>Phone: +91-XXXXXXXXXX</p>
			</div>
		</div>
	`, studentName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendRejectionEmail sends the admission rejection notification.
func (s *EmailServiceImpl) SendRejectionEmail(toEmail, studentName string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("studentName", studentName).
			Msg("SMTP credentials not configured - rejection email not sent.")
		return nil
	}

	subject := "Admission Update from KRM University"

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #cc0000;">Dear %s,</h2>
			<p>Thank you for your interest in KRM University and for taking the time to apply.</p>

			<p>After careful consideration of your application, we regret to inform you that we are unable to offer you admission at this time.</p>

			<p>This decision was not easy, and we truly appreciate the effort you put into your application. We encourage you to continue pursuing your academic goals and wish you the very best in your future endeavors.</p>

			<p style="margin-top: 20px;">If you have any questions or would like feedback on your application, feel free to reach out to our admissions team.</p>

			<div style="margin-top: 30px; padding: 15px; background-color: #fef2f2; border-left: 4px solid #e53e3e;">
				<p><strong>KRM University Admissions Office</strong></p>
				<p>Email: admissions@krmu.edu</p>
				<p>Phone: +91-XXXXXXXXXX</p>
			</div>
		</div>
	`, studentName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	// Simple SMTP without TLS
	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
