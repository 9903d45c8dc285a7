package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RequiredProfile selects which required-field policy a deployment uses.
// The duplicated intake forms disagree on whether banking data is mandatory,
// so the policy is configuration, not code.
type RequiredProfile string

const (
	ProfileFull      RequiredProfile = "full"
	ProfileNoBanking RequiredProfile = "no-banking"
)

// Config holds every process-wide setting. SMTP credentials live here and are
// handed to the dispatcher at construction; core logic never reads env vars.
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// SMTP transport
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	// Submission routing
	RecipientEmail  string
	SubjectTemplate string

	RequiredProfile RequiredProfile

	// When true the exported workbook is also stored inside the zip
	// under Planilhas/.
	ArchiveIncludeSheets bool

	// Legacy deployment profile: also persist documents and the workbook
	// under LocalBasePath/<cpf>/. Empty disables it.
	LocalBasePath string
}

func Load() (*Config, error) {
	smtpPort, err := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	recipient := os.Getenv("ADMISSION_RECIPIENT")
	if recipient == "" {
		return nil, fmt.Errorf("ADMISSION_RECIPIENT environment variable is required")
	}

	profile := RequiredProfile(getEnvOrDefault("REQUIRED_PROFILE", string(ProfileFull)))
	switch profile {
	case ProfileFull, ProfileNoBanking:
	default:
		return nil, fmt.Errorf("unknown REQUIRED_PROFILE %q", profile)
	}

	return &Config{
		Port:         getEnvOrDefault("PORT", "3000"),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,

		SMTPHost:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		RecipientEmail:  recipient,
		SubjectTemplate: getEnvOrDefault("ADMISSION_SUBJECT", "Admissão - %s"),

		RequiredProfile:      profile,
		ArchiveIncludeSheets: getEnvOrDefault("ARCHIVE_INCLUDE_SHEETS", "false") == "true",
		LocalBasePath:        os.Getenv("ADMISSION_LOCAL_PATH"),
	}, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
