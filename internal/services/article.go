package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
)

const defaultListLimit = 20

// ArticleReader defines read-only operations for articles.
type ArticleReader interface {
	GetMetaBySlug(ctx context.Context, slug string) (*models.ArticleMeta, error)
	GetViewBySlug(ctx context.Context, viewerID *uuid.UUID, slug string) (*models.ArticleRow, error)
	GetViewByID(ctx context.Context, viewerID *uuid.UUID, articleID uuid.UUID) (*models.ArticleRow, error)
	List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleRow, error)
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int64) ([]models.ArticleRow, error)
	ListTags(ctx context.Context) ([]string, error)
}

// ArticleWriter defines write operations for articles.
type ArticleWriter interface {
	Save(ctx context.Context, article models.ArticleDB) error
	Update(ctx context.Context, articleID uuid.UUID, upd models.ArticleUpdate) error
	Delete(ctx context.Context, articleID uuid.UUID) error
}

// ArticleService handles article authoring and listing.
type ArticleService struct {
	reader ArticleReader
	writer ArticleWriter
}

// NewArticleService creates a new ArticleService instance.
func NewArticleService(reader ArticleReader, writer ArticleWriter) *ArticleService {
	return &ArticleService{reader: reader, writer: writer}
}

// Create persists a new article. The slug derives from the title; on a
// collision the service retries once with a random suffix, relying on
// the unique constraint rather than a pre-read.
func (svc *ArticleService) Create(ctx context.Context, authorID uuid.UUID, title, description, body string, tags []string) (*models.ArticleView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrValidation
	}

	article := models.ArticleDB{
		ArticleID:   uuid.New(),
		UserID:      authorID,
		Slug:        slug.Make(title),
		Title:       title,
		Description: description,
		Body:        body,
		TagList:     marshalTags(tags),
	}

	err := svc.writer.Save(ctx, article)
	if errors.Is(err, repositories.ErrDuplicateSlug) {
		article.Slug = disambiguateSlug(article.Slug)
		err = svc.writer.Save(ctx, article)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		logger.Log.Errorw("failed to save article", "err", err)
		return nil, err
	}

	return svc.viewByID(ctx, &authorID, article.ArticleID)
}

// Update applies a partial update. Only the author may mutate; a title
// change regenerates the slug with the same collision policy as Create.
func (svc *ArticleService) Update(ctx context.Context, slugStr string, editorID uuid.UUID, title, description, body *string, tags []string) (*models.ArticleView, error) {
	meta, err := svc.reader.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotFound
	}
	if meta.UserID != editorID {
		return nil, ErrNotAuthor
	}

	upd := models.ArticleUpdate{
		Title:       title,
		Description: description,
		Body:        body,
	}
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, ErrValidation
		}
		newSlug := slug.Make(*title)
		upd.Slug = &newSlug
	}
	if tags != nil {
		upd.TagList = marshalTags(tags)
	}

	err = svc.writer.Update(ctx, meta.ArticleID, upd)
	if errors.Is(err, repositories.ErrDuplicateSlug) && upd.Slug != nil {
		retry := disambiguateSlug(*upd.Slug)
		upd.Slug = &retry
		err = svc.writer.Update(ctx, meta.ArticleID, upd)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		logger.Log.Errorw("failed to update article", "err", err)
		return nil, err
	}

	return svc.viewByID(ctx, &editorID, meta.ArticleID)
}

// Delete removes the article and cascades to its favorites and comments.
func (svc *ArticleService) Delete(ctx context.Context, slugStr string, requesterID uuid.UUID) error {
	meta, err := svc.reader.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return err
	}
	if meta == nil {
		return ErrNotFound
	}
	if meta.UserID != requesterID {
		return ErrNotAuthor
	}

	if err := svc.writer.Delete(ctx, meta.ArticleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to delete article", "err", err)
		return err
	}
	return nil
}

// GetBySlug returns the article view as seen by viewerID.
func (svc *ArticleService) GetBySlug(ctx context.Context, viewerID *uuid.UUID, slugStr string) (*models.ArticleView, error) {
	row, err := svc.reader.GetViewBySlug(ctx, viewerID, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	view := row.ToView()
	return &view, nil
}

// List returns article views matching the filter, newest first.
func (svc *ArticleService) List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	rows, err := svc.reader.List(ctx, viewerID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list articles", "err", err)
		return nil, err
	}
	return toViews(rows), nil
}

// Feed returns articles authored by users the viewer follows.
func (svc *ArticleService) Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int64) ([]models.ArticleView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := svc.reader.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list feed", "err", err)
		return nil, err
	}
	return toViews(rows), nil
}

// Tags returns the distinct tags across all articles.
func (svc *ArticleService) Tags(ctx context.Context) ([]string, error) {
	tags, err := svc.reader.ListTags(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "err", err)
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (svc *ArticleService) viewByID(ctx context.Context, viewerID *uuid.UUID, articleID uuid.UUID) (*models.ArticleView, error) {
	row, err := svc.reader.GetViewByID(ctx, viewerID, articleID)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	view := row.ToView()
	return &view, nil
}

// marshalTags normalizes the tag set: trimmed, de-duplicated, sorted.
func marshalTags(tags []string) []byte {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	sort.Strings(normalized)

	data, err := json.Marshal(normalized)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// disambiguateSlug appends a short random suffix after a collision.
func disambiguateSlug(base string) string {
	return base + "-" + strings.Split(uuid.NewString(), "-")[0]
}

func toViews(rows []models.ArticleRow) []models.ArticleView {
	views := make([]models.ArticleView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].ToView())
	}
	return views
}
