package pg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

// Post and attachment writes are intentionally separate statements: the
// service layer owns atomicity through compensating deletes, mirroring the
// hosted storage boundary this schema models.

func (s *Storage) CreatePost(post domain.CommunityPost) (domain.PostId, error) {
	var id domain.PostId
	err := s.db.QueryRow(`
	INSERT INTO community_posts(user_id, kind, caption)
	VALUES($1, $2, $3)
	RETURNING id`,
		post.UserId, string(post.Kind), post.Caption).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) CreateAttachment(att domain.CommunityAttachment) (domain.AttachmentId, error) {
	var sparkId sql.NullInt64
	if att.SparkId != nil {
		sparkId = sql.NullInt64{Int64: *att.SparkId, Valid: true}
	}

	var id domain.AttachmentId
	err := s.db.QueryRow(`
	INSERT INTO community_attachments(post_id, spark_id, title, subtitle, image_url, external_url, audio_url, media_kind)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`,
		att.PostId, sparkId, nullString(att.Title), nullString(att.Subtitle),
		nullString(att.ImageUrl), nullString(att.ExternalUrl), nullString(att.AudioUrl),
		string(att.MediaKind)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetPost(id domain.PostId) (*domain.CommunityPost, error) {
	var post domain.CommunityPost
	var kind string
	err := s.db.QueryRow(`
	SELECT id, user_id, kind, caption, created_at
	FROM community_posts
	WHERE id = $1`, id).Scan(&post.Id, &post.UserId, &kind, &post.Caption, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
		}
		return nil, err
	}
	post.Kind = domain.PostKind(kind)

	attachments, err := s.attachmentsForPosts([]domain.PostId{id})
	if err != nil {
		return nil, err
	}
	post.Attachments = attachments[id]
	return &post, nil
}

func (s *Storage) ListPosts(limit, offset int) ([]domain.CommunityPost, error) {
	rows, err := s.db.Query(`
	SELECT p.id, p.user_id, p.kind, p.caption, p.created_at, u.profile
	FROM community_posts p
	JOIN users u ON u.id = p.user_id
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.CommunityPost
	var ids []domain.PostId
	for rows.Next() {
		var post domain.CommunityPost
		var kind string
		var profileJSON []byte
		if err := rows.Scan(&post.Id, &post.UserId, &kind, &post.Caption, &post.CreatedAt, &profileJSON); err != nil {
			return nil, err
		}
		post.Kind = domain.PostKind(kind)
		if err := json.Unmarshal(profileJSON, &post.Author); err != nil {
			return nil, fmt.Errorf("failed to unmarshal author profile: %w", err)
		}
		posts = append(posts, post)
		ids = append(ids, post.Id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return posts, nil
	}

	attachments, err := s.attachmentsForPosts(ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Attachments = attachments[posts[i].Id]
	}
	return posts, nil
}

func (s *Storage) attachmentsForPosts(ids []domain.PostId) (map[domain.PostId][]domain.CommunityAttachment, error) {
	rows, err := s.db.Query(`
	SELECT id, post_id, spark_id, title, subtitle, image_url, external_url, audio_url, media_kind
	FROM community_attachments
	WHERE post_id = ANY($1)
	ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.PostId][]domain.CommunityAttachment)
	for rows.Next() {
		var att domain.CommunityAttachment
		var sparkId sql.NullInt64
		var title, subtitle, imageUrl, externalUrl, audioUrl sql.NullString
		var mediaKind string
		if err := rows.Scan(&att.Id, &att.PostId, &sparkId, &title, &subtitle, &imageUrl, &externalUrl, &audioUrl, &mediaKind); err != nil {
			return nil, err
		}
		if sparkId.Valid {
			att.SparkId = &sparkId.Int64
		}
		att.Title = title.String
		att.Subtitle = subtitle.String
		att.ImageUrl = imageUrl.String
		att.ExternalUrl = externalUrl.String
		att.AudioUrl = audioUrl.String
		att.MediaKind = domain.ContentKind(mediaKind)
		result[att.PostId] = append(result[att.PostId], att)
	}
	return result, rows.Err()
}

func (s *Storage) DeletePost(id domain.PostId) error {
	result, err := s.db.Exec(`DELETE FROM community_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) DeleteAttachments(postId domain.PostId) error {
	_, err := s.db.Exec(`DELETE FROM community_attachments WHERE post_id = $1`, postId)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
