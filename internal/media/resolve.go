package media

import (
	"net/url"
	"path"
	"strings"
)

const octetStream = "application/octet-stream"

// Resolution is a resolved MIME type plus the extension used for naming.
type Resolution struct {
	Mime string
	Ext  string
}

// extToMime maps filename extensions to MIME types.
var extToMime = map[string]string{
	// images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	// video
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"3gp":  "video/3gpp",
	"flv":  "video/x-flv",
	"wmv":  "video/x-ms-wmv",
	// audio
	"mp3":  "audio/mpeg",
	"ogg":  "audio/ogg",
	"wav":  "audio/wav",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",
	"flac": "audio/flac",
	"wma":  "audio/x-ms-wma",
	"opus": "audio/opus",
	// documents and archives
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"json": "application/json",
	"xml":  "application/xml",
	"zip":  "application/zip",
	"rar":  "application/vnd.rar",
	"7z":   "application/x-7z-compressed",
}

// mimeToExt maps MIME types to a canonical extension. Unlisted types fall
// back to the raw subtype token.
var mimeToExt = map[string]string{
	"image/jpeg":       "jpg",
	"image/png":        "png",
	"image/gif":        "gif",
	"image/webp":       "webp",
	"image/bmp":        "bmp",
	"image/svg+xml":    "svg",
	"image/x-icon":     "ico",
	"video/mp4":        "mp4",
	"video/quicktime":  "mov",
	"video/x-msvideo":  "avi",
	"video/x-matroska": "mkv",
	"video/webm":       "webm",
	"video/3gpp":       "3gp",
	"audio/mpeg":       "mp3",
	"audio/mp4":        "m4a",
	"audio/wav":        "wav",
	"audio/aac":        "aac",
	"audio/flac":       "flac",
	"audio/webm":       "webm",
	"application/pdf":  "pdf",
	"application/json": "json",
	"application/zip":  "zip",
	"text/plain":       "txt",
	"text/csv":         "csv",
}

// NormalizeMime lowercases a MIME string and truncates trailing parameters
// (";codecs=opus" and friends). Idempotent.
func NormalizeMime(raw string) string {
	mime := strings.ToLower(strings.TrimSpace(raw))
	if mime == "" {
		return ""
	}
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = strings.TrimSpace(mime[:idx])
	}
	return mime
}

// resolver is one strategy of the resolution cascade; ok reports whether the
// strategy produced an answer.
type resolver func(src Source) (Resolution, bool)

// Resolve determines the final MIME type and naming extension from whatever
// signals src carries, trying strategies in priority order: declared MIME,
// filename extension, URL extension, octet-stream fallback. Ogg/Opus audio is
// remapped to MP3 regardless of which strategy matched: the storage bucket
// does not accept those containers.
func Resolve(src Source) Resolution {
	strategies := []resolver{
		resolveDeclaredMime,
		resolveFileNameExt,
		resolveURLExt,
	}
	res := Resolution{Mime: octetStream, Ext: "unknown"}
	for _, strategy := range strategies {
		if r, ok := strategy(src); ok {
			res = r
			break
		}
	}
	return remapUnsupportedAudio(res)
}

func resolveDeclaredMime(src Source) (Resolution, bool) {
	mime := NormalizeMime(src.MimeType)
	if mime == "" {
		return Resolution{}, false
	}
	return Resolution{Mime: mime, Ext: extensionForMime(mime)}, true
}

func resolveFileNameExt(src Source) (Resolution, bool) {
	ext := extensionToken(src.FileName)
	if ext == "" {
		return Resolution{}, false
	}
	mime, ok := extToMime[ext]
	if !ok {
		mime = octetStream
	}
	return Resolution{Mime: mime, Ext: ext}, true
}

func resolveURLExt(src Source) (Resolution, bool) {
	raw := strings.TrimSpace(src.MediaURL)
	if raw == "" {
		return Resolution{}, false
	}
	candidate := raw
	if parsed, err := url.Parse(raw); err == nil && parsed.Path != "" {
		candidate = parsed.Path
	} else if idx := strings.IndexAny(raw, "?#"); idx >= 0 {
		candidate = raw[:idx]
	}
	ext := extensionToken(path.Base(candidate))
	if ext == "" {
		return Resolution{}, false
	}
	mime, ok := extToMime[ext]
	if !ok {
		mime = octetStream
	}
	return Resolution{Mime: mime, Ext: ext}, true
}

// remapUnsupportedAudio rewrites Ogg/Opus resolutions to MP3.
func remapUnsupportedAudio(res Resolution) Resolution {
	if res.Mime == "audio/ogg" || res.Mime == "audio/opus" {
		return Resolution{Mime: "audio/mpeg", Ext: "mp3"}
	}
	return res
}

// extensionForMime derives the naming extension for a normalized MIME type,
// falling back to the raw subtype token for unlisted types.
func extensionForMime(mime string) string {
	if ext, ok := mimeToExt[mime]; ok {
		return ext
	}
	if idx := strings.Index(mime, "/"); idx >= 0 && idx+1 < len(mime) {
		return mime[idx+1:]
	}
	return "bin"
}

// extensionToken returns the lowercase dot-extension of name without the dot,
// or "" when name has none.
func extensionToken(name string) string {
	ext := path.Ext(strings.TrimSpace(name))
	if len(ext) < 2 {
		return ""
	}
	return strings.ToLower(ext[1:])
}
