package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI simula la API de Assistants: el run pasa por "queued" e "in_progress" antes de finalStatus.
type fakeOpenAI struct {
	mu          sync.Mutex
	finalStatus string
	polls       int
	calls       []string
	question    string
	auth        string
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.auth = r.Header.Get("Authorization")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/threads":
		_, _ = w.Write([]byte(`{"id":"thread_new"}`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/messages"):
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.question = body["content"]
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/runs"):
		_, _ = w.Write([]byte(`{"id":"run_1","status":"queued"}`))
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/runs/"):
		f.polls++
		status := "in_progress"
		if f.polls >= 2 {
			status = f.finalStatus
		}
		_, _ = w.Write([]byte(`{"id":"run_1","status":"` + status + `"}`))
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/messages"):
		_, _ = w.Write([]byte(`{"data":[{"role":"assistant","content":[{"type":"text","text":{"value":"Temos café em promoção."}}]}]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newAssistant(t *testing.T, f http.Handler) *OpenAIAssistant {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewOpenAIAssistant(srv.URL, time.Second, time.Millisecond)
}

func TestOpenAIAssistant_CreatesThreadAndPollsUntilCompleted(t *testing.T) {
	fake := &fakeOpenAI{finalStatus: "completed"}
	a := newAssistant(t, fake)

	reply, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "sk-test", AssistantID: "asst_1"}, "tem café?")
	require.NoError(t, err)

	assert.Equal(t, "Temos café em promoção.", reply.Answer)
	assert.Equal(t, "thread_new", reply.ThreadID)
	assert.Equal(t, "completed", reply.Status)
	assert.Equal(t, "tem café?", fake.question)
	assert.Equal(t, "Bearer sk-test", fake.auth)
	assert.Equal(t, 2, fake.polls)
	assert.Equal(t, "POST /threads", fake.calls[0])
}

func TestOpenAIAssistant_ReusesThread(t *testing.T) {
	fake := &fakeOpenAI{finalStatus: "completed"}
	a := newAssistant(t, fake)

	reply, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "k", AssistantID: "a", ThreadID: "thread_old"}, "oi")
	require.NoError(t, err)

	assert.Equal(t, "thread_old", reply.ThreadID)
	assert.Equal(t, "POST /threads/thread_old/messages", fake.calls[0])
}

func TestOpenAIAssistant_FailedRun(t *testing.T) {
	a := newAssistant(t, &fakeOpenAI{finalStatus: "failed"})

	reply, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "k", AssistantID: "a"}, "oi")
	require.NoError(t, err)
	assert.Equal(t, "failed", reply.Status)
	assert.Equal(t, answerFailed, reply.Answer)
}

func TestOpenAIAssistant_IncompleteRun(t *testing.T) {
	a := newAssistant(t, &fakeOpenAI{finalStatus: "incomplete"})

	reply, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "k", AssistantID: "a"}, "oi")
	require.NoError(t, err)
	assert.Equal(t, answerIncomplete, reply.Answer)
}

func TestOpenAIAssistant_APIError(t *testing.T) {
	a := newAssistant(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))

	_, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "bad", AssistantID: "a"}, "oi")
	require.Error(t, err)

	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusUnauthorized, upErr.StatusCode)
	assert.Equal(t, "Incorrect API key provided", upErr.Message)
}

func TestOpenAIAssistant_ContextCancelledWhilePolling(t *testing.T) {
	a := newAssistant(t, &fakeOpenAI{finalStatus: "in_progress"})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Ask(ctx, ports.AssistantCredential{APIKey: "k", AssistantID: "a"}, "oi")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestOpenAIAssistant_RunThatNeverFinishesTimesOut(t *testing.T) {
	srv := httptest.NewServer(&fakeOpenAI{finalStatus: "in_progress"})
	t.Cleanup(srv.Close)
	a := NewOpenAIAssistant(srv.URL, 100*time.Millisecond, 5*time.Millisecond)

	start := time.Now()
	_, err := a.Ask(context.Background(), ports.AssistantCredential{APIKey: "k", AssistantID: "a"}, "oi")

	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}
