package refine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHTTPClient es un mock para httpclient.HTTPClient
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestRefine(t *testing.T) {
	t.Run("should post items and parse the response", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)

		var captured *http.Request
		mockClient.On("Do", mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(0).(*http.Request)
		}).Return(jsonResponse(http.StatusOK, `{"items":[{"title":"T","problem":"P"}],"_meta":{"tier":"free"}}`), nil)

		resp, err := service.Refine(context.Background(), []string{"item uno"}, models.RefineOptions{
			Context:        "ctx",
			UseUserStories: true,
			LicenseKey:     "key-123",
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "T", resp.Items[0].Title)
		assert.Equal(t, "free", resp.Meta.Tier)

		require.NotNil(t, captured)
		assert.Equal(t, http.MethodPost, captured.Method)
		assert.Equal(t, "https://api.example.com/v1/refine", captured.URL.String())
		assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
		assert.Equal(t, "mate-backlog/", captured.Header.Get("User-Agent")[:13])
		assert.Equal(t, "key-123", captured.Header.Get("X-License-Key"))
		assert.Greater(t, captured.ContentLength, int64(0))

		body, _ := io.ReadAll(captured.Body)
		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, []interface{}{"item uno"}, sent["items"])
		assert.Equal(t, "ctx", sent["context"])
		assert.Equal(t, true, sent["useUserStories"])
		// los campos ausentes se omiten, no viajan como null
		assert.NotContains(t, sent, "useGherkin")
	})

	t.Run("should omit optional fields when absent", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)

		var captured *http.Request
		mockClient.On("Do", mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(0).(*http.Request)
		}).Return(jsonResponse(http.StatusOK, `{"items":[]}`), nil)

		_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

		require.NoError(t, err)
		assert.Empty(t, captured.Header.Get("X-License-Key"))

		body, _ := io.ReadAll(captured.Body)
		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.NotContains(t, sent, "context")
		assert.NotContains(t, sent, "useUserStories")
		assert.NotContains(t, sent, "useGherkin")
	})

	t.Run("should map 429 to RateLimitError", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)
		mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusTooManyRequests, `{}`), nil)

		_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

		var rateLimitErr *domainerrors.RateLimitError
		assert.True(t, errors.As(err, &rateLimitErr))
	})

	t.Run("should map 402 to PayloadTooLargeError", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)
		mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusPaymentRequired, `{}`), nil)

		_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

		var payloadErr *domainerrors.PayloadTooLargeError
		assert.True(t, errors.As(err, &payloadErr))
	})

	t.Run("should map any other 4xx or 5xx to a generic APIError", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
			mockClient := new(MockHTTPClient)
			service := NewClient("https://api.example.com/v1", mockClient)
			mockClient.On("Do", mock.Anything).Return(jsonResponse(status, "boom"), nil)

			_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

			var apiErr *domainerrors.APIError
			assert.True(t, errors.As(err, &apiErr))
			assert.Equal(t, status, apiErr.Status)
			assert.Equal(t, "boom", apiErr.Body)
		}
	})

	t.Run("should wrap transport failures without retrying", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)
		mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		mockClient.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("should return ResponseFormatError with truncated excerpt on bad JSON", func(t *testing.T) {
		mockClient := new(MockHTTPClient)
		service := NewClient("https://api.example.com/v1", mockClient)
		longBody := "<html>" + strings.Repeat("x", 500)
		mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, longBody), nil)

		_, err := service.Refine(context.Background(), []string{"a"}, models.RefineOptions{})

		var formatErr *domainerrors.ResponseFormatError
		assert.True(t, errors.As(err, &formatErr))
		assert.LessOrEqual(t, len(formatErr.Excerpt), 200)
		assert.True(t, strings.HasPrefix(formatErr.Excerpt, "<html>"))
	})
}
