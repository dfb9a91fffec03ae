package domain

type (
	Email    = string
	Password = string
	UserId   = int64

	BoardId   = int64
	BoardName = string

	SparkId = int64

	PostId       = int64
	AttachmentId = int64
)

// KindTag is the stored discriminator on a spark. Historically overloaded:
// file items are stored under the "image" tag for lack of a schema category.
type KindTag string

const (
	TagNote  KindTag = "note"
	TagImage KindTag = "image"
	TagAudio KindTag = "audio"
)

// ContentKind is the semantic kind of a spark after classification.
// Distinct from KindTag: one tag can map to several kinds.
type ContentKind string

const (
	KindNote       ContentKind = "note"
	KindImage      ContentKind = "image"
	KindVoiceAudio ContentKind = "voice_audio"
	KindMusicAudio ContentKind = "music_audio"
	KindFile       ContentKind = "file"
)

// PostKind is the community feed's own enumeration. It overlaps with
// ContentKind but is not the same set: file and voice audio both collapse
// to "sparklette".
type PostKind string

const (
	PostNote       PostKind = "note"
	PostImage      PostKind = "image"
	PostMusic      PostKind = "music"
	PostSparklette PostKind = "sparklette"
	PostAudio      PostKind = "audio"
)
