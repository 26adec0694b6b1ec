package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

func TestCreateArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()

	tests := []struct {
		name         string
		title        string
		tags         []string
		authed       bool
		mockSetup    func(m *MockArticleCreator)
		expectedCode int
	}{
		{
			name:   "success",
			title:  "How to train your dragon",
			tags:   []string{"dragons", "training"},
			authed: true,
			mockSetup: func(m *MockArticleCreator) {
				m.EXPECT().
					Create(gomock.Any(), authorID, "How to train your dragon", "", "", []string{"dragons", "training"}).
					Return(&models.ArticleView{Slug: "how-to-train-your-dragon", Title: "How to train your dragon"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "empty title",
			title:  "",
			authed: true,
			mockSetup: func(m *MockArticleCreator) {
				m.EXPECT().
					Create(gomock.Any(), authorID, "", "", "", nil).
					Return(nil, services.ErrValidation)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "slug taken",
			title:  "Taken",
			authed: true,
			mockSetup: func(m *MockArticleCreator) {
				m.EXPECT().
					Create(gomock.Any(), authorID, "Taken", "", "", nil).
					Return(nil, services.ErrSlugTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "unauthorized",
			title:        "Anything",
			mockSetup:    func(m *MockArticleCreator) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateArticleHandler(mockSvc)

			var body CreateArticleRequest
			body.Article.Title = tt.title
			body.Article.TagList = tt.tags
			bodyBytes, _ := json.Marshal(body)

			req := httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBuffer(bodyBytes))
			if tt.authed {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), authorID))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp ArticleResponseBody
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "how-to-train-your-dragon", resp.Article.Slug)
			}
		})
	}
}

func TestGetArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		slug         string
		mockSetup    func(m *MockArticleGetter)
		expectedCode int
	}{
		{
			name: "success",
			slug: "welcome",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					GetBySlug(gomock.Any(), (*uuid.UUID)(nil), "welcome").
					Return(&models.ArticleView{Slug: "welcome"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			slug: "missing",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					GetBySlug(gomock.Any(), (*uuid.UUID)(nil), "missing").
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal server error",
			slug: "welcome",
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					GetBySlug(gomock.Any(), (*uuid.UUID)(nil), "welcome").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleGetter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/articles/{slug}", NewGetArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/articles/"+tt.slug, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	editorID := uuid.New()
	newTitle := "Renamed"

	tests := []struct {
		name         string
		mockSetup    func(m *MockArticleUpdater)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockArticleUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "old-slug", editorID, &newTitle, (*string)(nil), (*string)(nil), nil).
					Return(&models.ArticleView{Slug: "renamed", Title: "Renamed"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not the author",
			mockSetup: func(m *MockArticleUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "old-slug", editorID, &newTitle, (*string)(nil), (*string)(nil), nil).
					Return(nil, services.ErrNotAuthor)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "not found",
			mockSetup: func(m *MockArticleUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "old-slug", editorID, &newTitle, (*string)(nil), (*string)(nil), nil).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "slug taken",
			mockSetup: func(m *MockArticleUpdater) {
				m.EXPECT().
					Update(gomock.Any(), "old-slug", editorID, &newTitle, (*string)(nil), (*string)(nil), nil).
					Return(nil, services.ErrSlugTaken)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleUpdater(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Put("/articles/{slug}", NewUpdateArticleHandler(mockSvc))

			var body UpdateArticleRequest
			body.Article.Title = &newTitle
			bodyBytes, _ := json.Marshal(body)

			req := httptest.NewRequest(http.MethodPut, "/articles/old-slug", bytes.NewBuffer(bodyBytes))
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), editorID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requesterID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockArticleDeleter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockArticleDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "welcome", requesterID).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "not the author",
			mockSetup: func(m *MockArticleDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "welcome", requesterID).
					Return(services.ErrNotAuthor)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "not found",
			mockSetup: func(m *MockArticleDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "welcome", requesterID).
					Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleDeleter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/articles/{slug}", NewDeleteArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/articles/welcome", nil)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), requesterID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListArticlesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := "celeb"

	mockSvc := NewMockArticleLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), (*uuid.UUID)(nil), models.ArticleFilter{Author: &author, Limit: 5, Offset: 10}).
		Return([]models.ArticleView{{Slug: "a"}, {Slug: "b"}}, nil)

	handler := NewListArticlesHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/articles?author=celeb&limit=5&offset=10", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ArticlesBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ArticlesCount)
	assert.Len(t, resp.Articles, 2)
}

func TestFeedArticlesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockArticleFeeder(ctrl)
		mockSvc.EXPECT().
			Feed(gomock.Any(), viewerID, int64(0), int64(0)).
			Return([]models.ArticleView{{Slug: "followed-post"}}, nil)

		handler := NewFeedArticlesHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/articles/feed", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), viewerID))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ArticlesBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ArticlesCount)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockSvc := NewMockArticleFeeder(ctrl)
		handler := NewFeedArticlesHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/articles/feed", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
