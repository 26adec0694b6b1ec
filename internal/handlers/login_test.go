package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
	}{
		{
			name:     "success",
			email:    "jake@jake.jake",
			password: "password",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jake@jake.jake", "password").
					Return(&models.UserDB{Username: "jake", Email: "jake@jake.jake"}, "token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "invalid credentials",
			email:    "jake@jake.jake",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jake@jake.jake", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "internal server error",
			email:    "jake@jake.jake",
			password: "password",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jake@jake.jake", "password").
					Return(nil, "", errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			var body LoginRequest
			body.User.Email = tt.email
			body.User.Password = tt.password
			bodyBytes, _ := json.Marshal(body)

			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp UserBody
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "token123", resp.User.Token)
			}
		})
	}
}
