package base64

import "strings"

// GetContentType extracts the MIME type from a data URI. Stored plot images
// come back from the upstream either as plain URLs or inlined data URIs.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
