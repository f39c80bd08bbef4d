package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"holistica/config"
)

// SendEmail sends an HTML mail through the configured SMTP account. It is a
// no-op when no sender is configured so local setups work without SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword
	if from == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Holística Center <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2E5D4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #2E5D4B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #EAF4EF; padding: 15px; border-radius: 4px; border-left: 4px solid #2E5D4B; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>HOLÍSTICA CENTER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Holística Center. Todos los derechos reservados.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Bienvenido a Holística Center"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta en <strong>Holística Center</strong> fue creada correctamente.</p>
		<p>Ya puedes explorar nuestros cursos e inscribirte en el que más te guste.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("¡Bienvenido!", body))
}

// SendPaymentReceiptEmail confirms a course purchase
func SendPaymentReceiptEmail(email, name, courseTitle string, amount float64, reference string) {
	subject := "Pago confirmado: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Recibimos tu pago de <strong>$%.2f</strong> por el curso <strong>%s</strong>.</p>
		<div class="info-box">
			Referencia de pago: <strong>%s</strong>
		</div>
		<p>Ya estás inscrito. ¡Nos vemos en clase!</p>
	`, name, amount, courseTitle, reference)

	go SendEmail([]string{email}, subject, getEmailTemplate("Pago confirmado", body))
}
