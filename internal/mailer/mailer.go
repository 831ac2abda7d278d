package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"ats-backend/internal/shared/telemetry"
)

const inviteSubject = "Your screening interview invitation"

var inviteTemplate = template.Must(template.New("invite").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <p>Hi {{.ApplicantName}},</p>
  <p>Thanks for applying. The next step is a short AI-led screening interview.
  It takes a few minutes and you can do it whenever suits you.</p>
  <p><a href="{{.InterviewURL}}" style="display:inline-block;padding:10px 18px;background:#4f46e5;color:#fff;text-decoration:none;border-radius:6px;">Start your interview</a></p>
  <p>Or copy this link into your browser:<br>{{.InterviewURL}}</p>
  <p>Good luck!</p>
</body>
</html>`))

type inviteData struct {
	ApplicantName string
	InterviewURL  string
}

// SMTPMailer sends transactional mail over plain SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SendScreeningInvite renders and delivers the screening-invite email.
func (m *SMTPMailer) SendScreeningInvite(ctx context.Context, to, applicantName, interviewURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.Host == "" || m.From == "" {
		return fmt.Errorf("smtp not configured")
	}

	body, err := RenderInvite(applicantName, interviewURL)
	if err != nil {
		return fmt.Errorf("render invite: %w", err)
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", inviteSubject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("send invite: %w", err)
	}

	telemetry.Info("mailer.invite_sent", map[string]any{"to": to})
	return nil
}

// RenderInvite produces the HTML body for the screening-invite email.
func RenderInvite(applicantName, interviewURL string) (string, error) {
	var buf bytes.Buffer
	err := inviteTemplate.Execute(&buf, inviteData{
		ApplicantName: applicantName,
		InterviewURL:  interviewURL,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
