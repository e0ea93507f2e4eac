package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/venturebridge/venturebridge/internal/domain"
)

const validTokenInfo = `{
	"sub": "108977041",
	"aud": "client-1.apps.googleusercontent.com",
	"email": "founder@acme.io",
	"email_verified": "true",
	"name": "Ada Founder",
	"picture": "https://lh3.example/photo",
	"given_name": "Ada",
	"family_name": "Founder"
}`

type mockRecorder struct {
	recordFn func(ctx context.Context, entry *domain.ActivityLog) error
}

func (m *mockRecorder) Record(ctx context.Context, entry *domain.ActivityLog) error {
	return m.recordFn(ctx, entry)
}

func tokenInfoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") == "" {
			t.Error("id_token query parameter missing")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifyGoogleTokenSuccess(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validTokenInfo)
	svc := New(Config{TokenInfoURL: srv.URL, Audience: "client-1.apps.googleusercontent.com"})

	profile, err := svc.VerifyGoogleToken(context.Background(), "tok")
	if err != nil {
		t.Fatalf("VerifyGoogleToken: %v", err)
	}
	if profile.Sub != "108977041" {
		t.Errorf("sub = %q", profile.Sub)
	}
	if profile.Email != "founder@acme.io" {
		t.Errorf("email = %q", profile.Email)
	}
	if !profile.EmailVerified {
		t.Error("email_verified string claim not converted")
	}
	if profile.GivenName != "Ada" || profile.FamilyName != "Founder" {
		t.Errorf("name claims = %q %q", profile.GivenName, profile.FamilyName)
	}
}

func TestVerifyGoogleTokenRejectsEmptyToken(t *testing.T) {
	svc := New(Config{})
	if _, err := svc.VerifyGoogleToken(context.Background(), ""); !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("err = %v, want ErrAuthFailed", err)
	}
}

func TestVerifyGoogleTokenRejectsIntrospectionFailure(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusBadRequest, `{"error":"invalid_token"}`)
	svc := New(Config{TokenInfoURL: srv.URL})

	if _, err := svc.VerifyGoogleToken(context.Background(), "bad"); !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("err = %v, want ErrAuthFailed", err)
	}
}

func TestVerifyGoogleTokenRejectsAudienceMismatch(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validTokenInfo)
	svc := New(Config{TokenInfoURL: srv.URL, Audience: "other-client.apps.googleusercontent.com"})

	if _, err := svc.VerifyGoogleToken(context.Background(), "tok"); !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("err = %v, want ErrAuthFailed", err)
	}
}

func TestVerifyGoogleTokenSkipsAudienceCheckWhenUnset(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validTokenInfo)
	svc := New(Config{TokenInfoURL: srv.URL})

	if _, err := svc.VerifyGoogleToken(context.Background(), "tok"); err != nil {
		t.Fatalf("VerifyGoogleToken: %v", err)
	}
}

func TestVerifyGoogleTokenRecordsSignIn(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validTokenInfo)

	var recorded *domain.ActivityLog
	rec := &mockRecorder{
		recordFn: func(_ context.Context, entry *domain.ActivityLog) error {
			recorded = entry
			return nil
		},
	}
	svc := New(Config{TokenInfoURL: srv.URL}).WithActivityLog(rec)

	if _, err := svc.VerifyGoogleToken(context.Background(), "tok"); err != nil {
		t.Fatalf("VerifyGoogleToken: %v", err)
	}
	if recorded == nil {
		t.Fatal("sign-in was not recorded")
	}
	if recorded.UserID != "108977041" || recorded.Action != "google_sign_in" {
		t.Errorf("entry = %+v", recorded)
	}
	if recorded.Meta["email"] != "founder@acme.io" {
		t.Errorf("meta = %v", recorded.Meta)
	}
}

func TestVerifyGoogleTokenSwallowsActivityFailure(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validTokenInfo)

	rec := &mockRecorder{
		recordFn: func(context.Context, *domain.ActivityLog) error {
			return domain.ErrStoreUnavailable
		},
	}
	svc := New(Config{TokenInfoURL: srv.URL}).WithActivityLog(rec)

	if _, err := svc.VerifyGoogleToken(context.Background(), "tok"); err != nil {
		t.Fatalf("activity failure leaked into auth result: %v", err)
	}
}
