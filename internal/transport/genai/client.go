// Package genai — HTTP клиент Gemini generateContent API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const RouteGenerateContent = "/v1beta/models/%s:generateContent"

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
)

// HTTPClient является реализацией интерфейса клиента генерации инсайтов поверх
// REST API Gemini.
type HTTPClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, model, apiKey string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []contentPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// GenerateContent отправляет системную инструкцию и пользовательский запрос модели и
// возвращает текст первого кандидата. При статусе отличном от http.StatusOK возвращает
// ошибку StatusCodeError, при ответе без текста — ErrNoCandidates.
//
//nolint:nonamedreturns
func (c HTTPClient) GenerateContent(
	ctx context.Context,
	systemInstruction string,
	userContent string,
) (text string, err error) {
	// Формируем URL запроса.
	url := c.baseURL + fmt.Sprintf(RouteGenerateContent, c.model)

	payload := generateRequest{
		SystemInstruction: &content{Parts: []contentPart{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []contentPart{{Text: userContent}}}},
	}
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return "", fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return "", fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return "", err
	}

	// Парсим успешный ответ.
	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return "", err
	}

	var response generateResponse
	if jsonErr := json.Unmarshal(respBody, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return "", err
	}

	if len(response.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
