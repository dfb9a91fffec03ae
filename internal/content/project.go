package content

import (
	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

// Fallback titles and fixed subtitles shown in the feed.
const (
	untitledNoteTitle = "Untitled Note"
	voiceTitle        = "Voice Recording"
	voiceSubtitle     = "Audio recording"
	fileTitle         = "File"
	fileSubtitle      = "Document"
)

// PostKindFor maps a classified content kind to the community feed's own
// enumeration. The mapping is lossy: file and voice audio have no dedicated
// post kind and both collapse to "sparklette".
func PostKindFor(kind domain.ContentKind) (domain.PostKind, error) {
	switch kind {
	case domain.KindImage:
		return domain.PostImage, nil
	case domain.KindNote:
		return domain.PostNote, nil
	case domain.KindFile, domain.KindVoiceAudio:
		return domain.PostSparklette, nil
	case domain.KindMusicAudio:
		return domain.PostMusic, nil
	}
	return "", internal_errors.UnsupportedForSharing
}

// Project maps a classified spark into the attachment shape the community
// feed displays, plus the post kind it should be published under. Only the
// fields relevant to the media kind are populated. No side effects: the
// caller persists the post first, then the attachment.
func Project(spark *domain.Spark, c Classification) (domain.PostKind, domain.CommunityAttachment, error) {
	postKind, err := PostKindFor(c.Kind)
	if err != nil {
		return "", domain.CommunityAttachment{}, err
	}

	sparkId := spark.Id
	att := domain.CommunityAttachment{
		SparkId: &sparkId,
		// MediaKind keeps the originating kind: voice audio stays distinct
		// from music audio even though both publish as "sparklette"/"music".
		MediaKind: c.Kind,
	}

	switch c.Kind {
	case domain.KindImage:
		att.Title = spark.Title
		att.ImageUrl = spark.Url
	case domain.KindNote:
		att.Title = orDefault(spark.Title, untitledNoteTitle)
		att.Subtitle = c.NoteBody
	case domain.KindVoiceAudio:
		att.Title = orDefault(spark.Title, voiceTitle)
		att.Subtitle = voiceSubtitle
		att.AudioUrl = spark.Url
	case domain.KindMusicAudio:
		att.Title = orDefault(spark.Title, c.Music.TrackName)
		att.Subtitle = c.Music.Artists
		att.ImageUrl = c.Music.AlbumImage
		att.ExternalUrl = orDefault(c.Music.SpotifyUrl, spark.Url)
	case domain.KindFile:
		att.Title = orDefault(spark.Title, fileTitle)
		att.Subtitle = fileSubtitle
		att.ImageUrl = spark.Url // download link, not a decoded image
	}

	return postKind, att, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
