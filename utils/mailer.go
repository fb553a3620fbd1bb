package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk-app/config"
	"helpdesk-app/logger"
)

// SendTicketAssignedMail notifies an engineer about a new assignment.
// Mail is best effort: when MAIL_ENABLED is off it is a no-op, and a
// send failure never fails the assignment itself.
func SendTicketAssignedMail(toEmail, engineerName, ticketNo, title, slaDue string) error {
	if !config.MailEnabled {
		logger.Debugf("mail disabled, skipping assignment mail for %s", ticketNo)
		return nil
	}

	subject := fmt.Sprintf("[%s] Ticket assigned to you", ticketNo)
	body := fmt.Sprintf(`
		<html>
			<body>
				<p>Hi %s,</p>
				<p>Ticket <b>%s</b> has been assigned to you.</p>
				<p>Subject: %s</p>
				<p>SLA due: %s</p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, engineerName, ticketNo, title, slaDue)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.Errorf("assignment mail for %s failed: %v", ticketNo, err)
		return err
	}

	logger.Infof("assignment mail for %s sent to %s", ticketNo, toEmail)
	return nil
}
