package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"recipegenie/utils"
)

// TranslateService is the client for the external translation API.
type TranslateService struct {
	url    string
	client *http.Client
}

func NewTranslateService(url string) *TranslateService {
	return &TranslateService{
		url:    url,
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate translates text into the target language with the source
// language auto-detected. Target codes are forwarded unvalidated; an
// unrecognized code is the upstream's rejection to surface.
func (s *TranslateService) Translate(text, target string) (string, error) {
	payload := map[string]any{
		"q":      text,
		"source": "auto",
		"target": target,
		"format": "text",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal translation payload: %w", err)
	}

	resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to call translation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Detail: utils.Truncate(string(body), 120)}
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}
	return tr.TranslatedText, nil
}
