//go:build integration

package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_WhoAmI checks the token against the people endpoint
func TestWorkflow_WhoAmI(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("catalog", "call", "people.me", "--output", "json")
	require.NoError(t, err, "Failed to call people.me: %s", stderr)

	var me map[string]any
	DecodeJSONOutput(t, stdout, &me)
	assert.NotEmpty(t, me["id"])
}

// TestWorkflow_OutputFormats tests all output formats work correctly
func TestWorkflow_OutputFormats(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("locations", "list", "--limit", "5", "--output", "json")
	require.NoError(t, err, "Failed to list locations as JSON: %s", stderr)

	var locations []map[string]any
	DecodeJSONOutput(t, stdout, &locations)
	assert.LessOrEqual(t, len(locations), 5)

	stdout, stderr, err = runner.Run("locations", "list", "--limit", "5", "--output", "yaml")
	require.NoError(t, err, "Failed to list locations as YAML: %s", stderr)
	AssertYAMLOutput(t, stdout)

	stdout, stderr, err = runner.Run("locations", "list", "--limit", "5")
	require.NoError(t, err, "Failed to list locations as table: %s", stderr)
	assert.Contains(t, strings.ToUpper(stdout), "TIME ZONE")
}

// TestWorkflow_Pagination lists with a small page size so several pages are
// fetched, then compares with a single large page
func TestWorkflow_Pagination(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("catalog", "call", "locations.list", "--page-size", "1", "--max-pages", "3", "--output", "json")
	require.NoError(t, err, "Failed to list locations page by page: %s", stderr)

	var paged []map[string]any
	DecodeJSONOutput(t, stdout, &paged)
	assert.LessOrEqual(t, len(paged), 3)

	stdout, stderr, err = runner.Run("catalog", "call", "locations.list", "--page-size", "100", "--max-pages", "1", "--output", "json")
	require.NoError(t, err, "Failed to list locations: %s", stderr)

	var single []map[string]any
	DecodeJSONOutput(t, stdout, &single)

	for i := range paged {
		require.Less(t, i, len(single))
		assert.Equal(t, single[i]["id"], paged[i]["id"])
	}
}

// TestWorkflow_TranslationPatternLifecycle creates, reads and deletes a
// location level translation pattern
func TestWorkflow_TranslationPatternLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipUnlessWritesAllowed(t)

	runner := NewCommandRunner(config, t)
	name := GenerateTestName("wxc-it")

	bodyFile := filepath.Join(t.TempDir(), "pattern.json")
	body := fmt.Sprintf(`{"name":%q,"matchingPattern":"+91XXXX","replacementPattern":"+91234"}`, name)
	require.NoError(t, os.WriteFile(bodyFile, []byte(body), 0o600))

	stdout, stderr, err := runner.Run("catalog", "call", "translationPatterns.createForLocation",
		"--path", "locationId="+config.LocationID, "--body", bodyFile)
	require.NoError(t, err, "Failed to create translation pattern: %s", stderr)

	id := strings.TrimSpace(stdout)
	require.NotEmpty(t, id)

	defer runner.CleanupTranslationPattern(id, config.LocationID)

	stdout, stderr, err = runner.Run("translation-patterns", "get", id, "--location", config.LocationID, "--output", "json")
	require.NoError(t, err, "Failed to get translation pattern: %s", stderr)

	var pattern map[string]any
	DecodeJSONOutput(t, stdout, &pattern)
	assert.Equal(t, name, pattern["name"])

	_, stderr, err = runner.Run("translation-patterns", "delete", id, "--location", config.LocationID)
	require.Error(t, err, "delete without --force must fail")
	assert.Contains(t, stderr, "--force")
}

// TestWorkflow_ErrorHandling checks that API errors surface with status
func TestWorkflow_ErrorHandling(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("locations", "get", "does-not-exist")
	require.Error(t, err)
	assert.Regexp(t, `40[034]`, stderr)

	_, stderr, err = runner.Run("catalog", "call", "widgets.list")
	require.Error(t, err)
	assert.Contains(t, stderr, "unknown catalog endpoint")
}
