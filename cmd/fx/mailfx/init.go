package mailfx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"mindwijzer/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() (services.IMailService, error) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		UseSSL:     port == 465,
		RequireTLS: os.Getenv("SMTP_REQUIRE_TLS") == "true",
		AppName:    "MindWijzer",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}
