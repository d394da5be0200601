package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const trackingPrefix = "ZAP"

// GenerateTrackingID produces a human-readable parcel tracking identifier of
// the form ZAP-YYYYMMDD-XXXXXX, where the suffix is 3 random bytes rendered
// as uppercase hex. There is no uniqueness check against existing ids.
func GenerateTrackingID() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %v", err)
	}

	date := time.Now().UTC().Format("20060102")

	return fmt.Sprintf("%s-%s-%X", trackingPrefix, date, buf), nil
}
