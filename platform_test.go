package localekit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit"
)

func TestAcceptLanguagePlatform(t *testing.T) {
	t.Parallel()

	platform := localekit.AcceptLanguagePlatform()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "single tag",
			header: "fr-FR",
			want:   "fr-FR",
		},
		{
			name:   "highest quality wins",
			header: "zh-CN,zh;q=0.9,en;q=0.8",
			want:   "zh-CN",
		},
		{
			name:   "quality reorders tags",
			header: "en;q=0.5,de-DE;q=0.9",
			want:   "de-DE",
		},
		{
			name:   "bare language",
			header: "ja",
			want:   "ja",
		},
		{
			name:   "missing header",
			header: "",
			want:   "",
		},
		{
			name:   "malformed header",
			header: ";;;",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, platform(req))
		})
	}

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, platform(nil))
	})
}

func TestVisitorSubject(t *testing.T) {
	t.Parallel()

	subject := localekit.VisitorSubject("visitor_id")

	t.Run("reads cookie value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "visitor_id", Value: "abc-123"})
		assert.Equal(t, "abc-123", subject(req))
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, subject(req))
	})

	t.Run("empty cookie name", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "visitor_id", Value: "abc-123"})
		assert.Empty(t, localekit.VisitorSubject("")(req))
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, subject(nil))
	})
}
