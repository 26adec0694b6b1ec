package handlers

import (
	"encoding/json"
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

func TestFavoriteArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func(m *MockFavoriter)
		expectedCode int
	}{
		{
			name:   "success",
			authed: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "welcome").
					Return(&models.ArticleView{Slug: "welcome", Favorited: true, FavoritesCount: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "already favorited",
			authed: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "welcome").
					Return(nil, services.ErrAlreadyFavorited)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "article not found",
			authed: true,
			mockSetup: func(m *MockFavoriter) {
				m.EXPECT().
					Favorite(gomock.Any(), userID, "welcome").
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "unauthorized",
			mockSetup:    func(m *MockFavoriter) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFavoriter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Post("/articles/{slug}/favorite", NewFavoriteArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/articles/welcome/favorite", nil)
			if tt.authed {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp ArticleResponseBody
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Article.Favorited)
				assert.Equal(t, int64(1), resp.Article.FavoritesCount)
			}
		})
	}
}

func TestUnfavoriteArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUnfavoriter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockUnfavoriter) {
				m.EXPECT().
					Unfavorite(gomock.Any(), userID, "welcome").
					Return(&models.ArticleView{Slug: "welcome"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not favorited",
			mockSetup: func(m *MockUnfavoriter) {
				m.EXPECT().
					Unfavorite(gomock.Any(), userID, "welcome").
					Return(nil, services.ErrNotFavorited)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "article not found",
			mockSetup: func(m *MockUnfavoriter) {
				m.EXPECT().
					Unfavorite(gomock.Any(), userID, "welcome").
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUnfavoriter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/articles/{slug}/favorite", NewUnfavoriteArticleHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/articles/welcome/favorite", nil)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
