package config

import (
	"strings"
	"testing"
)

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"VAPI_API_KEY", "VAPI_PHONE_NUMBER_ID", "VAPI_WORKFLOW_ID"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestValidate_DefaultsBaseURL(t *testing.T) {
	c := Config{
		API:   APIConfig{Key: "k", PhoneNumberID: "p", WorkflowID: "w"},
		Batch: BatchConfig{MaxConcurrency: 5},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.API.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", c.API.BaseURL)
	}
}

func TestValidate_RejectsBadConcurrency(t *testing.T) {
	for _, n := range []int{0, -3} {
		c := Config{
			API:   APIConfig{Key: "k", PhoneNumberID: "p", WorkflowID: "w"},
			Batch: BatchConfig{MaxConcurrency: n},
		}
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for concurrency %d", n)
		}
	}
}

func TestValidate_RejectsNonHTTPBaseURL(t *testing.T) {
	c := Config{
		API:   APIConfig{Key: "k", PhoneNumberID: "p", WorkflowID: "w", BaseURL: "ftp://api.vapi.ai"},
		Batch: BatchConfig{MaxConcurrency: 1},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for non-http base URL")
	}
}

func TestLoad_UsesEnv(t *testing.T) {
	t.Setenv("VAPI_API_KEY", "key")
	t.Setenv("VAPI_PHONE_NUMBER_ID", "pn")
	t.Setenv("VAPI_WORKFLOW_ID", "wf")
	t.Setenv("MAX_CONCURRENT_CALLS", "3")
	t.Setenv("VAPI_BASE_URL", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Batch.MaxConcurrency != 3 {
		t.Fatalf("expected concurrency 3, got %d", c.Batch.MaxConcurrency)
	}
	if c.API.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", c.API.BaseURL)
	}
}

func TestLoad_DefaultsConcurrency(t *testing.T) {
	t.Setenv("VAPI_API_KEY", "key")
	t.Setenv("VAPI_PHONE_NUMBER_ID", "pn")
	t.Setenv("VAPI_WORKFLOW_ID", "wf")
	t.Setenv("MAX_CONCURRENT_CALLS", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Batch.MaxConcurrency != DefaultMaxConcurrency {
		t.Fatalf("expected default concurrency, got %d", c.Batch.MaxConcurrency)
	}
}

func TestLoad_RejectsNonIntegerConcurrency(t *testing.T) {
	t.Setenv("VAPI_API_KEY", "key")
	t.Setenv("VAPI_PHONE_NUMBER_ID", "pn")
	t.Setenv("VAPI_WORKFLOW_ID", "wf")
	t.Setenv("MAX_CONCURRENT_CALLS", "lots")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-integer MAX_CONCURRENT_CALLS")
	}
}
