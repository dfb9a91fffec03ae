package domain

import "time"

// CommunityPost is a shareable wrapper around one spark, visible in the
// shared feed. It owns its attachments: they are deleted before the post.
type CommunityPost struct {
	Id        PostId
	UserId    UserId
	Kind      PostKind
	Caption   string
	CreatedAt time.Time

	Attachments []CommunityAttachment
	Author      Profile // populated when fetching the feed
}

// CommunityAttachment is the normalized, display-ready projection of a
// shared spark. Only the fields relevant to its MediaKind are populated.
type CommunityAttachment struct {
	Id          AttachmentId
	PostId      PostId
	SparkId     *SparkId // back-reference to the originating spark, if it still exists
	Title       string
	Subtitle    string
	ImageUrl    string
	ExternalUrl string
	AudioUrl    string
	MediaKind   ContentKind
}
