package media

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		mime string
		want Kind
	}{
		{mime: "image/png", want: KindImage},
		{mime: "image/svg+xml", want: KindImage},
		{mime: "video/mp4", want: KindVideo},
		{mime: "audio/mpeg", want: KindAudio},
		{mime: "audio/webm", want: KindAudio},
		{mime: "audio/ogg", want: KindAudio},
		{mime: "application/pdf", want: KindDocument},
		{mime: "application/zip", want: KindFile},
		{mime: "text/plain", want: KindFile},
		{mime: "application/octet-stream", want: KindFile},
		{mime: "", want: KindFile},
	}
	for _, tc := range cases {
		if got := Classify(tc.mime); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

// Every MIME in the extension table classifies into exactly one known kind.
func TestClassifyTotalOverExtensionTable(t *testing.T) {
	known := map[Kind]bool{
		KindImage:    true,
		KindVideo:    true,
		KindAudio:    true,
		KindDocument: true,
		KindFile:     true,
	}
	for ext, mime := range extToMime {
		kind := Classify(mime)
		if !known[kind] {
			t.Fatalf("Classify(%q) [ext %q] returned unknown kind %q", mime, ext, kind)
		}
	}
}
