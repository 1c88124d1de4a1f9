package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly when only
// the required credentials are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Search defaults
	assert.Equal(t, []string{"LGA", "JFK"}, cfg.Search.Origins)
	assert.Equal(t, []string{"OAK", "SJC"}, cfg.Search.Destinations)
	assert.Equal(t, []string{"B6", "UA", "AA"}, cfg.Search.Airlines)
	assert.Equal(t, float64(500), cfg.Search.MaxPrice)
	assert.Equal(t, 1, cfg.Search.DaysAhead)
	assert.Equal(t, 1, cfg.Search.Adults)
	assert.Equal(t, 10, cfg.Search.MaxResults)

	// Provider defaults
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "30s", cfg.Amadeus.Timeout.String())

	// Email defaults
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPServer)
	assert.Equal(t, 587, cfg.Email.SMTPPort)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)

	setEnvVars(t, map[string]string{
		"ORIGIN_AIRPORTS":      "EWR",
		"DESTINATION_AIRPORTS": "SFO,OAK,SJC",
		"AIRLINES":             "B6",
		"MAX_PRICE":            "350",
		"DAYS_AHEAD":           "7",
		"ADULTS":               "2",
		"MAX_RESULTS":          "5",
		"AMADEUS_BASE_URL":     "https://api.amadeus.com",
		"AMADEUS_TIMEOUT":      "10s",
		"SMTP_SERVER":          "smtp.example.com",
		"SMTP_PORT":            "2525",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"EWR"}, cfg.Search.Origins)
	assert.Equal(t, []string{"SFO", "OAK", "SJC"}, cfg.Search.Destinations)
	assert.Equal(t, []string{"B6"}, cfg.Search.Airlines)
	assert.Equal(t, float64(350), cfg.Search.MaxPrice)
	assert.Equal(t, 7, cfg.Search.DaysAhead)
	assert.Equal(t, 2, cfg.Search.Adults)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "10s", cfg.Amadeus.Timeout.String())
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPServer)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

// TestLoad_MissingRequiredVars tests that missing credentials fail loading
// with all missing names reported in one error.
func TestLoad_MissingRequiredVars(t *testing.T) {
	tests := []struct {
		name        string
		omit        []string
		wantMissing []string
	}{
		{
			name:        "missing recipient",
			omit:        []string{"RECIPIENT_EMAIL"},
			wantMissing: []string{"RECIPIENT_EMAIL"},
		},
		{
			name:        "missing provider credentials",
			omit:        []string{"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET"},
			wantMissing: []string{"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET"},
		},
		{
			name: "everything missing",
			omit: []string{
				"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET",
				"SENDER_EMAIL", "SENDER_EMAIL_PASSWORD", "RECIPIENT_EMAIL",
			},
			wantMissing: []string{
				"AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET",
				"SENDER_EMAIL", "SENDER_EMAIL_PASSWORD", "RECIPIENT_EMAIL",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			for _, name := range tt.omit {
				os.Unsetenv(name)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "missing required environment variables")
			for _, name := range tt.wantMissing {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

// TestLoad_Validation_Criteria tests that criteria shape errors fail loading.
func TestLoad_Validation_Criteria(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"invalid origin", "ORIGIN_AIRPORTS", "newark", "origin must be a valid 3-letter IATA code"},
		{"invalid destination", "DESTINATION_AIRPORTS", "SFOX", "destination must be a valid 3-letter IATA code"},
		{"invalid airline", "AIRLINES", "jetblue", "airline must be a valid 2-character IATA code"},
		{"zero max price", "MAX_PRICE", "0", "max price must be greater than zero"},
		{"negative days ahead", "DAYS_AHEAD", "-1", "days ahead cannot be negative"},
		{"too many adults", "ADULTS", "12", "adults cannot exceed 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_SMTPPortRange tests port validation boundaries.
func TestLoad_Validation_SMTPPortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 25", "25", false},
		{"valid port 587", "587", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port negative", "-1", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"SMTP_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SMTP_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setRequiredEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_NegativeTimeout tests that the provider timeout must be positive.
func TestLoad_Validation_NegativeTimeout(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)
	setEnvVars(t, map[string]string{"AMADEUS_TIMEOUT": "-5s"})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AMADEUS_TIMEOUT must be positive")
	assert.Nil(t, cfg)
}

// TestConfig_Criteria tests that the criteria is assembled from the search config.
func TestConfig_Criteria(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnvVars(t)
	setEnvVars(t, map[string]string{
		"ORIGIN_AIRPORTS":      "LGA,JFK",
		"DESTINATION_AIRPORTS": "OAK,SJC",
		"MAX_PRICE":            "500",
	})

	cfg, err := Load()
	require.NoError(t, err)

	criteria := cfg.Criteria()
	assert.Equal(t, []string{"LGA", "JFK"}, criteria.Origins)
	assert.Equal(t, []string{"OAK", "SJC"}, criteria.Destinations)
	assert.Equal(t, float64(500), criteria.MaxPrice)
	assert.NoError(t, criteria.Validate())
	assert.Len(t, criteria.Pairs(), 4)
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"ORIGIN_AIRPORTS",
		"DESTINATION_AIRPORTS",
		"AIRLINES",
		"MAX_PRICE",
		"DAYS_AHEAD",
		"ADULTS",
		"MAX_RESULTS",
		"AMADEUS_CLIENT_ID",
		"AMADEUS_CLIENT_SECRET",
		"AMADEUS_BASE_URL",
		"AMADEUS_TIMEOUT",
		"SENDER_EMAIL",
		"SENDER_EMAIL_PASSWORD",
		"RECIPIENT_EMAIL",
		"SMTP_SERVER",
		"SMTP_PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setRequiredEnvVars sets the credentials and identities that Load requires.
func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	setEnvVars(t, map[string]string{
		"AMADEUS_CLIENT_ID":     "test-client-id",
		"AMADEUS_CLIENT_SECRET": "test-client-secret",
		"SENDER_EMAIL":          "sender@example.com",
		"SENDER_EMAIL_PASSWORD": "app-password",
		"RECIPIENT_EMAIL":       "recipient@example.com",
	})
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
