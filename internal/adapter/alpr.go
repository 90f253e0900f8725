// SPDX-License-Identifier: Apache-2.0

// Package adapter holds clients for external services. Its one
// occupant today is the ALPR HTTP client, the production implementation
// of the capture pipeline's Recognizer.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/goatgarage/go-vehicle-logbook/internal/capture"
)

type ALPRClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// alprRecognizer posts frame bytes to an OpenALPR-compatible HTTP
// service and maps its plate results to capture candidates.
type alprRecognizer struct {
	client *resty.Client
}

func NewALPRRecognizer(cfg ALPRClientConfig) capture.Recognizer {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(cfg.Timeout)

	return &alprRecognizer{client: cli}
}

// alprResponse mirrors the OpenALPR agent's JSON result envelope.
type alprResponse struct {
	Version        float32      `json:"version"`
	DataType       string       `json:"data_type"`
	EpochTime      float64      `json:"epoch_time"`
	ImgWidth       int          `json:"img_width"`
	ImgHeight      int          `json:"img_height"`
	ProcessingTime float64      `json:"processing_time_ms"`
	Results        []alprResult `json:"results"`
}

type alprResult struct {
	Plate           string  `json:"plate"`
	Confidence      float64 `json:"confidence"`
	MatchesTemplate int     `json:"matches_template"`
	PlateIndex      int     `json:"plate_index"`
	Region          string  `json:"region"`
}

func (a *alprRecognizer) Recognize(ctx context.Context, frame *capture.Frame) ([]capture.Candidate, error) {
	// resty rejects a nil []byte body, and frames without pixel data are
	// legal, so always hand it a non-nil slice.
	body := frame.Data
	if body == nil {
		body = []byte{}
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(body).
		Post("/v1/recognize")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ar alprResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecognizerResponse, err)
	}

	candidates := make([]capture.Candidate, 0, len(ar.Results))
	for _, r := range ar.Results {
		candidates = append(candidates, capture.Candidate{
			Text:       r.Plate,
			Confidence: r.Confidence,
		})
	}
	return candidates, nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", ErrRecognizerUnavailable, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
