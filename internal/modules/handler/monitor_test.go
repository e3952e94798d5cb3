package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMonitorService is a mock implementation of MonitorService
type MockMonitorService struct {
	mock.Mock
}

func (m *MockMonitorService) List() []model.Monitor {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Monitor)
}

func (m *MockMonitorService) Create(ctx context.Context, in service.CreateMonitorInput) (*model.Monitor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monitor), args.Error(1)
}

func (m *MockMonitorService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMonitorService) Check(ctx context.Context, id string) (*model.Monitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monitor), args.Error(1)
}

func (m *MockMonitorService) CheckAll(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockMonitorService) Featured() (model.Monitor, bool) {
	args := m.Called()
	return args.Get(0).(model.Monitor), args.Bool(1)
}

func (m *MockMonitorService) RunSweeper(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

func TestMonitorHandler_CreateMonitor(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockMonitorService)
		expectedStatus int
	}{
		{
			name: "new monitor starts checking",
			body: `{"url":"https://example.com","name":"example"}`,
			setup: func(svc *MockMonitorService) {
				svc.On("Create", mock.Anything, service.CreateMonitorInput{URL: "https://example.com", Name: "example"}).
					Return(&model.Monitor{ID: "m1", URL: "https://example.com", Name: "example", Status: model.MonitorChecking}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing url",
			body: `{"name":"example"}`,
			setup: func(svc *MockMonitorService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrInvalid)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockMonitorService{}
			tt.setup(mockService)

			h := NewMonitorHandler(mockService)
			router := setupRouter()
			router.POST("/monitor", h.CreateMonitor)

			req := httptest.NewRequest("POST", "/monitor", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestMonitorHandler_CheckMonitor(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockMonitorService)
		expectedStatus int
	}{
		{
			name: "settled probe result",
			setup: func(svc *MockMonitorService) {
				svc.On("Check", mock.Anything, "m1").
					Return(&model.Monitor{ID: "m1", Status: model.MonitorUp, LastChecked: "2026-02-19 10:30"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "monitor not found",
			setup: func(svc *MockMonitorService) {
				svc.On("Check", mock.Anything, "m1").Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockMonitorService{}
			tt.setup(mockService)

			h := NewMonitorHandler(mockService)
			router := setupRouter()
			router.POST("/monitor/:monitor_id/check", h.CheckMonitor)

			req := httptest.NewRequest("POST", "/monitor/m1/check", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestMonitorHandler_CheckAllMonitors(t *testing.T) {
	mockService := &MockMonitorService{}
	mockService.On("CheckAll", mock.Anything).Return(3)

	h := NewMonitorHandler(mockService)
	router := setupRouter()
	router.POST("/monitor/check", h.CheckAllMonitors)

	req := httptest.NewRequest("POST", "/monitor/check", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":3`)
	mockService.AssertExpectations(t)
}
