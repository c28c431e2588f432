package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grubline/recipebox/internal/http/middlewares"
	"github.com/grubline/recipebox/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeResolver struct {
	userIDFn func(ctx context.Context, token string) (string, error)
}

func (f *fakeResolver) UserID(ctx context.Context, token string) (string, error) {
	if f.userIDFn != nil {
		return f.userIDFn(ctx, token)
	}
	return "", session.ErrNoSession
}

func setupGate(resolver *fakeResolver) (*gin.Engine, *string) {
	r := gin.New()

	gate := middlewares.NewSessionMiddleware(resolver)

	var seenUserID string

	r.GET("/protected", gate.RequireSession(), func(c *gin.Context) {
		id, _ := middlewares.UserIDFromContext(c)
		seenUserID = id
		c.Status(http.StatusOK)
	})

	return r, &seenUserID
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name           string
		cookie         *http.Cookie
		resolver       *fakeResolver
		wantStatusCode int
		wantUserID     string
	}{
		{
			name:           "no_cookie",
			cookie:         nil,
			resolver:       &fakeResolver{},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "unknown_token",
			cookie:         &http.Cookie{Name: middlewares.SessionCookieName, Value: "bogus"},
			resolver:       &fakeResolver{},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "valid_session",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "tok-1"},
			resolver: &fakeResolver{
				userIDFn: func(ctx context.Context, token string) (string, error) {
					if token != "tok-1" {
						t.Fatalf("gate resolved token %q, want %q", token, "tok-1")
					}
					return "user-1", nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantUserID:     "user-1",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			router, seenUserID := setupGate(tt.resolver)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)

			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantUserID != "" && *seenUserID != tt.wantUserID {
				t.Fatalf("handler saw user id %q, want %q", *seenUserID, tt.wantUserID)
			}
		})
	}
}
