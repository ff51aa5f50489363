package media

import "strings"

// Classify maps a final MIME type to the message taxonomy. Check order
// matters: the media prefixes win before the document/file fallback, so
// audio/webm and audio/ogg classify as audio even though their containers
// overlap video and remapped types.
func Classify(mime string) Kind {
	mime = NormalizeMime(mime)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case strings.HasPrefix(mime, "video/"):
		return KindVideo
	case strings.HasPrefix(mime, "audio/"):
		return KindAudio
	case mime == "application/pdf":
		return KindDocument
	default:
		return KindFile
	}
}
