// Package content resolves a spark's overloaded storage fields into a typed
// content kind, projects classified sparks into community attachments, and
// computes spawn placement for newly created items.
package content

import (
	"encoding/json"
	"strings"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

// MusicMeta is the structured metadata streaming-service integrations
// serialize into a spark's text field.
type MusicMeta struct {
	TrackName   string `json:"trackName"`
	Artists     string `json:"artists"`
	AlbumImage  string `json:"albumImage"`
	SpotifyUri  string `json:"spotifyUri"`
	SpotifyUrl  string `json:"spotifyUrl"`
	DisplayMode string `json:"displayMode"`
}

// Classification is the typed result of resolving a spark's text field.
// Exactly one payload field is meaningful for a given Kind; downstream code
// works off this result and never re-interprets the raw strings.
type Classification struct {
	Kind     domain.ContentKind
	NoteBody string     // KindNote: the plain note body
	MimeType string     // KindFile: the text field is actually a MIME type
	Music    *MusicMeta // KindMusicAudio
}

// Classify determines the semantic kind of a spark from its stored kind tag,
// text field and title. Pure function; first matching rule wins.
//
// Files have no dedicated tag and live under "image" with a MIME type in the
// text field. That rule is a legacy compatibility shim for records written by
// old clients, kept so they keep rendering, not a pattern to extend.
func Classify(tag domain.KindTag, textContent, title string) (Classification, error) {
	switch tag {
	case domain.TagNote:
		return Classification{Kind: domain.KindNote, NoteBody: textContent}, nil
	case domain.TagAudio:
		if meta, ok := parseMusicMeta(textContent); ok {
			return Classification{Kind: domain.KindMusicAudio, Music: meta}, nil
		}
		// No parseable metadata means an in-app voice recording.
		return Classification{Kind: domain.KindVoiceAudio}, nil
	case domain.TagImage:
		if textContent != "" && title != "" && strings.Contains(textContent, "/") {
			if _, ok := parseMusicMeta(textContent); !ok {
				return Classification{Kind: domain.KindFile, MimeType: textContent}, nil
			}
		}
		return Classification{Kind: domain.KindImage}, nil
	}
	return Classification{}, &internal_errors.UnknownKindError{KindTag: string(tag)}
}

// parseMusicMeta attempts to interpret s as serialized music metadata.
// A failed parse is never an error, it just means "not structured".
func parseMusicMeta(s string) (*MusicMeta, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var meta MusicMeta
	if err := json.Unmarshal([]byte(trimmed), &meta); err != nil {
		return nil, false
	}
	return &meta, true
}
