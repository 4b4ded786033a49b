package dataset

import (
	"fmt"
	"os"
)

// ResolvePath picks the dataset file to load: the sampled artifact when it
// exists (faster), otherwise the full dataset. Loaders should go through this
// single precedence rule instead of probing paths themselves.
func ResolvePath(samplePath, fullPath string) (string, error) {
	if samplePath != "" {
		if _, err := os.Stat(samplePath); err == nil {
			return samplePath, nil
		}
	}
	if fullPath != "" {
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("no dataset found (tried %q and %q)", samplePath, fullPath)
}
