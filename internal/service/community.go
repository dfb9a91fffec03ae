package service

import (
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/sparkboard-dev/sparkboard/internal/content"
	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
)

// to mock service in tests
type CommunityService interface {
	Share(actor *domain.User, sparkId domain.SparkId, caption string) (*domain.CommunityPost, error)
	Unshare(actor *domain.User, postId domain.PostId) error
	Feed(page int) ([]domain.CommunityPost, error)
}

type Community struct {
	storage  CommunityStorage
	caption  CaptionValidator
	policy   *bluemonday.Policy
	pageSize int
}

// CommunityStorage deliberately exposes single-record operations only: the
// backing store offers no multi-row transactions across posts and
// attachments, so atomicity is the service's job (compensating actions).
type CommunityStorage interface {
	GetSpark(id domain.SparkId) (*domain.Spark, error)

	CreatePost(post domain.CommunityPost) (domain.PostId, error)
	CreateAttachment(att domain.CommunityAttachment) (domain.AttachmentId, error)
	GetPost(id domain.PostId) (*domain.CommunityPost, error)
	ListPosts(limit, offset int) ([]domain.CommunityPost, error)
	DeletePost(id domain.PostId) error
	DeleteAttachments(postId domain.PostId) error
}

type CaptionValidator interface {
	Caption(caption string) error
}

func NewCommunity(storage CommunityStorage, caption CaptionValidator, pageSize int) *Community {
	return &Community{
		storage:  storage,
		caption:  caption,
		policy:   bluemonday.StrictPolicy(),
		pageSize: pageSize,
	}
}

// Share publishes a spark to the community feed: classify, project, create
// the post, then its attachment. A post must never persist without at least
// one attachment, so a failed attachment write triggers a compensating post
// delete.
func (c *Community) Share(actor *domain.User, sparkId domain.SparkId, caption string) (*domain.CommunityPost, error) {
	if actor == nil {
		return nil, internal_errors.NotAuthenticated
	}

	spark, err := c.storage.GetSpark(sparkId)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, spark.UserId); err != nil {
		return nil, err
	}

	// Classification failures abort before any remote write.
	classification, err := content.Classify(spark.KindTag, spark.TextContent, spark.Title)
	if err != nil {
		var unknown *internal_errors.UnknownKindError
		if errors.As(err, &unknown) {
			return nil, internal_errors.UnsupportedForSharing
		}
		return nil, err
	}

	postKind, attachment, err := content.Project(spark, classification)
	if err != nil {
		return nil, err
	}

	if err := c.caption.Caption(caption); err != nil {
		return nil, err
	}
	caption = strings.TrimSpace(c.policy.Sanitize(caption))

	post := domain.CommunityPost{UserId: actor.Id, Kind: postKind, Caption: caption}
	postId, err := c.storage.CreatePost(post)
	if err != nil {
		return nil, err
	}
	post.Id = postId

	attachment.PostId = postId
	attachmentId, err := c.storage.CreateAttachment(attachment)
	if err != nil {
		// Compensating delete: roll the post back rather than leave an
		// attachment-less post in the feed.
		if delErr := c.storage.DeletePost(postId); delErr != nil {
			compErr := &internal_errors.CompensationError{Op: "create attachment", Cause: err, Compensation: delErr}
			logger.Log.Error("share rollback failed, post left without attachments",
				"post_id", postId, "spark_id", sparkId, "cause", err, "compensation", delErr)
			return nil, compErr
		}
		return nil, err
	}
	attachment.Id = attachmentId

	post.Attachments = []domain.CommunityAttachment{attachment}
	return &post, nil
}

// Unshare removes a post from the feed. Attachments are deleted first; if
// that fails the post stays, since a post whose attachments reference a
// missing parent is impossible by construction but the reverse is not.
func (c *Community) Unshare(actor *domain.User, postId domain.PostId) error {
	if actor == nil {
		return internal_errors.NotAuthenticated
	}

	post, err := c.storage.GetPost(postId)
	if err != nil {
		return err
	}
	if err := requireOwner(actor, post.UserId); err != nil {
		return err
	}

	if err := c.storage.DeleteAttachments(postId); err != nil {
		return err
	}
	return c.storage.DeletePost(postId)
}

func (c *Community) Feed(page int) ([]domain.CommunityPost, error) {
	page = max(1, page)
	return c.storage.ListPosts(c.pageSize, (page-1)*c.pageSize)
}
