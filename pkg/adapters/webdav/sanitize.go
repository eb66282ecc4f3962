package webdav

import "strings"

var filenameReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename makes a note title safe for use as the mirror document
// filename. Save and delete both go through here so the two operations
// address the same resource.
func SanitizeFilename(title string) string {
	return strings.TrimSpace(filenameReplacer.Replace(title))
}
