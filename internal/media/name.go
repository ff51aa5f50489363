package media

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// storagePrefix is the fixed bucket prefix for message attachments.
const storagePrefix = "messages"

var (
	unsafeChars   = regexp.MustCompile(`[^\w\s.-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// SanitizeFileName strips everything outside word characters, whitespace,
// dots and hyphens, then collapses whitespace and underscore runs.
func SanitizeFileName(name string) string {
	clean := unsafeChars.ReplaceAllString(name, "")
	clean = whitespaceRun.ReplaceAllString(clean, "_")
	clean = underscoreRun.ReplaceAllString(clean, "_")
	return strings.Trim(clean, "_ ")
}

// ComposeKey builds a collision-resistant storage key:
// messages/{unixMillis}_{8hex}_{sanitizedBase}.{ext}, dropping the base
// segment when no filename hint exists. Each call mints a fresh
// timestamp+random pair, which is also how the collision retry renames.
func ComposeKey(fileName, ext string) string {
	stamp := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), randomSuffix())

	base := SanitizeFileName(strings.TrimSuffix(fileName, path.Ext(fileName)))
	if base == "" {
		return fmt.Sprintf("%s/%s.%s", storagePrefix, stamp, ext)
	}
	return fmt.Sprintf("%s/%s_%s.%s", storagePrefix, stamp, base, ext)
}

// randomSuffix returns 8 hex characters.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
