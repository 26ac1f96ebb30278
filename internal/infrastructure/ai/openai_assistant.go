package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
)

// Verificar en tiempo de compilación que OpenAIAssistant implementa Assistant.
var _ ports.Assistant = (*OpenAIAssistant)(nil)

const (
	defaultOpenAIURL = "https://api.openai.com/v1"
	serviceName      = "openai"

	// Respuestas al usuario cuando la ejecución no termina bien.
	answerFailed     = "Desculpa, mas meu sistema cognitivo falhou. Poderia escrever novamente sua mensagem?"
	answerIncomplete = "Desculpa, não consegui compreender. Poderia reformular sua pergunta?"
)

// OpenAIAssistant adaptador de la API de Assistants (hilos, mensajes y ejecuciones).
// Usa net/http; la API key y el assistant_id llegan en cada llamada desde la tabla de credenciales.
type OpenAIAssistant struct {
	baseURL      string
	timeout      time.Duration
	pollInterval time.Duration
	httpClient   *http.Client
}

// NewOpenAIAssistant construye el adaptador. timeout acota cada petición HTTP y también
// la espera total de Ask, aunque el contexto del llamador no tenga deadline.
func NewOpenAIAssistant(baseURL string, timeout, pollInterval time.Duration) *OpenAIAssistant {
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &OpenAIAssistant{
		baseURL:      strings.TrimRight(baseURL, "/"),
		timeout:      timeout,
		pollInterval: pollInterval,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

type threadObject struct {
	ID string `json:"id"`
}

type runObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type messageList struct {
	Data []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text struct {
				Value string `json:"value"`
			} `json:"text"`
		} `json:"content"`
	} `json:"data"`
}

type apiError struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Ask agrega la pregunta al hilo (o crea uno), ejecuta el asistente y espera un estado terminal.
func (a *OpenAIAssistant) Ask(ctx context.Context, cred ports.AssistantCredential, question string) (*ports.AssistantReply, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	base := a.baseURL
	if cred.APIURL != "" {
		base = strings.TrimRight(cred.APIURL, "/")
	}
	call := func(method, path string, in, out any) error {
		return a.do(ctx, cred.APIKey, method, base+path, in, out)
	}

	threadID := cred.ThreadID
	if threadID == "" {
		var thread threadObject
		if err := call(http.MethodPost, "/threads", map[string]any{}, &thread); err != nil {
			return nil, err
		}
		threadID = thread.ID
	}

	msg := map[string]string{"role": "user", "content": question}
	if err := call(http.MethodPost, "/threads/"+threadID+"/messages", msg, nil); err != nil {
		return nil, err
	}

	var run runObject
	if err := call(http.MethodPost, "/threads/"+threadID+"/runs", map[string]string{"assistant_id": cred.AssistantID}, &run); err != nil {
		return nil, err
	}

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()
	for !terminal(run.Status) {
		select {
		case <-ctx.Done():
			return nil, &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("esperando run %s: %w", run.ID, ctx.Err())}
		case <-ticker.C:
		}
		if err := call(http.MethodGet, "/threads/"+threadID+"/runs/"+run.ID, nil, &run); err != nil {
			return nil, err
		}
	}

	reply := &ports.AssistantReply{ThreadID: threadID, Status: run.Status}
	switch run.Status {
	case "completed":
		var list messageList
		if err := call(http.MethodGet, "/threads/"+threadID+"/messages?order=desc&limit=1", nil, &list); err != nil {
			return nil, err
		}
		reply.Answer = latestText(list)
	case "failed":
		reply.Answer = answerFailed
	case "incomplete":
		reply.Answer = answerIncomplete
	default:
		reply.Answer = "Erro: " + run.Status
	}
	return reply, nil
}

func terminal(status string) bool {
	switch status {
	case "queued", "in_progress", "cancelling":
		return false
	default:
		return true
	}
}

func latestText(list messageList) string {
	if len(list.Data) == 0 {
		return ""
	}
	for _, c := range list.Data[0].Content {
		if c.Type == "text" {
			return c.Text.Value
		}
	}
	return ""
}

func (a *OpenAIAssistant) do(ctx context.Context, apiKey, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("AI: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("OpenAI-Beta", "assistants=v2")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return &domain.UpstreamError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != nil {
			msg = apiErr.Error.Message
		}
		return &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return nil
}
