package utils

import (
	"fmt"
	"net/smtp"

	"typingmaster/config"
)

// SendWelcomeEmail sends the post-signup welcome email using Gmail SMTP.
// Callers treat a failure as non-fatal: the account is already created.
func SendWelcomeEmail(cfg *config.Config, email, name string) error {
	body := fmt.Sprintf(
		"Hi %s,\r\n"+
			"\r\n"+
			"Welcome to TypingMaster! Thank you for signing up.\r\n"+
			"\r\n"+
			"Your account has been created successfully. You can now start improving\r\n"+
			"your typing skills with our interactive tests and track your progress\r\n"+
			"over time.\r\n"+
			"\r\n"+
			"Features you'll enjoy:\r\n"+
			"- Real-time WPM feedback\r\n"+
			"- Progress tracking with beautiful charts\r\n"+
			"- Streak tracking and badges\r\n"+
			"- Leaderboards to compete with others\r\n"+
			"- Motivational quotes and TTS support\r\n"+
			"\r\n"+
			"Start typing and watch your skills improve!\r\n"+
			"\r\n"+
			"Best regards,\r\n"+
			"The TypingMaster Team\r\n",
		name)

	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	to := []string{email}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: Welcome to TypingMaster\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s",
		email, cfg.SMTP.SenderName, cfg.SMTP.SenderEmail, body))

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	if err := smtp.SendMail(addr, auth, cfg.SMTP.SenderEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %v", err)
	}
	return nil
}
