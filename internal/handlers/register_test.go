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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name:     "success",
			username: "jake",
			email:    "jake@jake.jake",
			password: "password",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jake", "jake@jake.jake", "password").
					Return(&models.UserDB{Username: "jake", Email: "jake@jake.jake"}, "token123", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:     "username taken",
			username: "alice",
			email:    "alice@example.com",
			password: "pass",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(nil, "", services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "email taken",
			username: "bob",
			email:    "bob@example.com",
			password: "pass",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass").
					Return(nil, "", services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "invalid fields",
			username: "",
			email:    "bad",
			password: "",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "bad", "").
					Return(nil, "", services.ErrValidation)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "internal server error",
			username: "carol",
			email:    "carol@example.com",
			password: "pass",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "carol@example.com", "pass").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{invalid json}"))
			} else {
				var body RegisterRequest
				body.User.Username = tt.username
				body.User.Email = tt.email
				body.User.Password = tt.password
				bodyBytes, _ := json.Marshal(body)
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp UserBody
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.username, resp.User.Username)
				assert.Equal(t, "token123", resp.User.Token)
			}
		})
	}
}
