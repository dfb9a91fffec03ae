package domain

import "time"

// Spark is a single user-placed object on a board.
//
// TextContent is the legacy overloaded field: a plain note body for notes,
// a MIME type string for files stored under the image tag, or serialized
// music metadata for streaming-service audio. Its meaning is resolved once
// by the content classifier; nothing else should interpret it.
type Spark struct {
	Id          SparkId
	BoardId     BoardId
	UserId      UserId
	KindTag     KindTag
	Url         string
	Title       string
	TextContent string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	CreatedAt   time.Time
}
