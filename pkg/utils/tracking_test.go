package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ZAP-\d{8}-[0-9A-F]{6}$`)

	before := time.Now().UTC().Format("20060102")
	id, err := GenerateTrackingID()
	after := time.Now().UTC().Format("20060102")

	require.NoError(t, err)
	assert.Regexp(t, pattern, id)

	date := strings.Split(id, "-")[1]
	assert.Contains(t, []string{before, after}, date, "date component is the current UTC date")
}

func TestGenerateTrackingIDRandomSuffix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := GenerateTrackingID()
		require.NoError(t, err)
		seen[id] = true
	}

	// 3 random bytes; 50 draws colliding down to a single value would mean
	// the random source is broken.
	assert.Greater(t, len(seen), 1)
}
