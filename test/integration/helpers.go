//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Token       string
	OrgID       string
	LocationID  string
	AllowWrites bool
	WxcPath     string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("WXC_API"),
		Token:       os.Getenv("WXC_TOKEN"),
		OrgID:       os.Getenv("WXC_ORG_ID"),
		LocationID:  os.Getenv("WXC_TEST_LOCATION_ID"),
		AllowWrites: os.Getenv("WXC_TEST_ALLOW_WRITES") == "true",
		WxcPath:     getWxcPath(),
		Verbose:     os.Getenv("WXC_VERBOSE") == "true",
	}
}

// getWxcPath determines the path to the wxc binary
func getWxcPath() string {
	if path := os.Getenv("WXC_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../wxc",
		"./wxc",
		"../wxc",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "wxc"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("WXC_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.WxcPath); err != nil {
		t.Skipf("wxc binary not found at %s, skipping integration test", config.WxcPath)
	}
}

// SkipUnlessWritesAllowed skips tests that create or delete resources
func (config *TestConfig) SkipUnlessWritesAllowed(t *testing.T) {
	t.Helper()

	if !config.AllowWrites || config.LocationID == "" {
		t.Skip("WXC_TEST_ALLOW_WRITES and WXC_TEST_LOCATION_ID not set, skipping write test")
	}
}

// CommandRunner runs wxc with an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a wxc command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a wxc command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	fullArgs := append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.WxcPath, fullArgs...)
	cmd.Env = append(os.Environ(), "WXC_TOKEN="+runner.config.Token)

	if runner.config.APIEndpoint != "" {
		cmd.Env = append(cmd.Env, "WXC_API="+runner.config.APIEndpoint)
	}

	if runner.config.OrgID != "" {
		cmd.Env = append(cmd.Env, "WXC_ORG_ID="+runner.config.OrgID)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.WxcPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupTranslationPattern attempts to delete a test translation pattern
func (runner *CommandRunner) CleanupTranslationPattern(id, locationID string) {
	args := []string{"translation-patterns", "delete", id, "--force"}
	if locationID != "" {
		args = append(args, "--location", locationID)
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for translation pattern %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// DecodeJSONOutput decodes command output that must be JSON
func DecodeJSONOutput(t *testing.T, output string, target any) {
	t.Helper()

	err := json.Unmarshal([]byte(strings.TrimSpace(output)), target)
	if err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if output == "[]" || strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
