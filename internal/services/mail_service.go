package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendReportReadyMail(to, quizTitle, sessionID string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.transip.email"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@mindwijzer.nl"
	FromName   string // display name, e.g. "MindWijzer"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail when STARTTLS is not offered

	AppName    string
	AppBaseURL string // e.g. "https://mindwijzer.nl"
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("reportHTML").Parse(reportHTMLTemplate)),
		textTpl: template.Must(template.New("reportText").Parse(reportTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendReportReadyMail(to, quizTitle, sessionID string) error {
	link := fmt.Sprintf("%s/rapport/%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), sessionID)
	subject := "Je resultaten staan klaar"

	data := reportMailData{
		Title:     subject,
		Intro:     fmt.Sprintf("Je hebt de vragenlijst %q afgerond. Je persoonlijke overzicht met tips en hulpmiddelen staat voor je klaar.", quizTitle),
		ButtonURL: link,
		ButtonTxt: "Bekijk je rapport",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

type reportMailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const reportHTMLTemplate = `<!doctype html>
<html lang="nl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f7f6; color: #1f2933; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 32px 16px; box-sizing: border-box; }
    .container { max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 8px 24px rgba(31, 41, 51, 0.08); }
    .header { padding: 24px 28px; background: #2f7d6d; }
    .brand { font-weight: 700; font-size: 20px; color: #ffffff; letter-spacing: 0.5px; }
    .hero { padding: 32px 28px; }
    h1 { margin: 0 0 12px; font-size: 24px; color: #1f2933; }
    p { margin: 0 0 18px; line-height: 1.6; color: #3e4c59; font-size: 15px; }
    .btn { display: inline-block; padding: 14px 28px; background: #2f7d6d; color: #ffffff !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .muted { color: #7b8794; font-size: 13px; }
    .footer { padding: 20px 28px; color: #7b8794; font-size: 12px; text-align: center; border-top: 1px solid #e4e7eb; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header"><div class="brand">{{.AppName}}</div></div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
        <p class="muted">Werkt de knop niet? Kopieer dan deze link: {{.ButtonURL}}</p>
      </div>
      <div class="footer">© {{.Year}} {{.AppName}}</div>
    </div>
  </div>
</body>
</html>`

const reportTextTemplate = `{{.Title}}

{{.Intro}}

Open deze link:
{{.ButtonURL}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var client *smtp.Client
	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
			if err = client.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
