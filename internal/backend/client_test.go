package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobguard/internal/records"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestLogin(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "a@example.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials %v", body)
		}
		_, _ = w.Write([]byte(`{"message":"Login successful","token":"tok-1","user":{"id":7,"email":"a@example.com","name":"Alice","profession":"Developer"}}`))
	})

	token, user, err := client.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Email != "a@example.com" || user.Profession != "Developer" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestLoginRejected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	})

	_, _, err := client.Login(context.Background(), "a@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "backend: Invalid email or password (status 401)" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestVerifySendsBearerToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("unexpected auth header %q", got)
		}
		_, _ = w.Write([]byte(`{"message":"Token is valid","user":{"id":7,"email":"a@example.com","name":"Alice","profession":"Developer"}}`))
	})

	user, err := client.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestRankJobs(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rank_jobs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req rankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Analyses) != 1 || req.Analyses[0].JobDescription != "jd" {
			t.Errorf("unexpected batch %+v", req.Analyses)
		}
		_, _ = w.Write([]byte(`[{"id":1,"userEmail":"a@example.com","jobDescription":"jd","confidence":{"label":"Real","confidences":[]},"cvMatchScore":72.4,"base_real_score":91.0,"personalized_score":100.0,"composite_score":88.9,"is_relevant":true,"is_safe":true,"risk_level":"LOW","relevance_alert":null,"user_profession":"Developer"}]`))
	})

	ranked, err := client.RankJobs(context.Background(), "tok-1", []records.Analysis{{
		ID:             1,
		UserEmail:      "a@example.com",
		JobDescription: "jd",
		Confidence:     records.Confidence{Label: "Real"},
	}})
	if err != nil {
		t.Fatalf("RankJobs: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected one entry, got %d", len(ranked))
	}
	entry := ranked[0]
	if entry.CVMatchScore == nil || *entry.CVMatchScore != 72.4 {
		t.Fatalf("unexpected cv match score %v", entry.CVMatchScore)
	}
	if entry.RiskLevel != "LOW" || !entry.IsSafe || !entry.IsRelevant {
		t.Fatalf("unexpected flags %+v", entry)
	}
	if entry.RelevanceAlert != nil {
		t.Fatalf("expected nil alert, got %v", *entry.RelevanceAlert)
	}
}

func TestRankJobsEmptyBatchSkipsNetwork(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty batch")
	})
	ranked, err := client.RankJobs(context.Background(), "tok-1", nil)
	if err != nil {
		t.Fatalf("RankJobs: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}
