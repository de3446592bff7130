package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the Vapi production API endpoint.
const DefaultBaseURL = "https://api.vapi.ai"

// DefaultMaxConcurrency bounds simultaneous call initiations when
// MAX_CONCURRENT_CALLS is not set.
const DefaultMaxConcurrency = 10

// Config holds all configuration required by the dialer process.
// All values must come from env (or a .env file in the working directory).
// No business logic should depend on raw environment variables.
type Config struct {
	API   APIConfig
	Batch BatchConfig
}

type APIConfig struct {
	// Key is the Vapi secret key used as a bearer token.
	Key string

	// PhoneNumberID identifies the Vapi number calls originate from.
	PhoneNumberID string

	// WorkflowID identifies the Vapi workflow driving each call.
	WorkflowID string

	// BaseURL is overridable for self-hosted deployments and tests.
	BaseURL string
}

type BatchConfig struct {
	// MaxConcurrency is the ceiling on simultaneous in-flight call
	// initiations. Must be >= 1.
	MaxConcurrency int
}

func Load() (Config, error) {
	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	c := Config{}
	var parseErrs []error

	c.API.Key = strings.TrimSpace(os.Getenv("VAPI_API_KEY"))
	c.API.PhoneNumberID = strings.TrimSpace(os.Getenv("VAPI_PHONE_NUMBER_ID"))
	c.API.WorkflowID = strings.TrimSpace(os.Getenv("VAPI_WORKFLOW_ID"))
	c.API.BaseURL = strings.TrimSpace(os.Getenv("VAPI_BASE_URL"))

	{
		n, err := optionalInt("MAX_CONCURRENT_CALLS", DefaultMaxConcurrency)
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.Batch.MaxConcurrency = n
	}

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.API.Key == "" {
		errs = append(errs, errors.New("VAPI_API_KEY is required"))
	}
	if c.API.PhoneNumberID == "" {
		errs = append(errs, errors.New("VAPI_PHONE_NUMBER_ID is required"))
	}
	if c.API.WorkflowID == "" {
		errs = append(errs, errors.New("VAPI_WORKFLOW_ID is required"))
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("VAPI_BASE_URL must be an http(s) URL, got %q", c.API.BaseURL))
	}

	if c.Batch.MaxConcurrency < 1 {
		errs = append(errs, fmt.Errorf("MAX_CONCURRENT_CALLS must be >= 1, got %d", c.Batch.MaxConcurrency))
	}

	return joinErrors(errs)
}

func optionalInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
