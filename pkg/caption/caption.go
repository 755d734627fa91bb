// Package caption asks a remote text-generation service for a suggested
// journal caption. The call is decorative: it retries quietly and degrades
// to a fixed line instead of ever failing the editing flow.
package caption

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/momolog/momo/pkg/logging"
)

const (
	promptWithPhoto = "You are a gentle scrapbook companion. Look at the photo and write one short, " +
		"healing caption for a journal page, warm with a hint of wistfulness. No more than 30 words."
	promptTextOnly = "Write one short line about a small happiness in an ordinary day, " +
		"in the voice of a quiet vlog narration."

	// Fallback is returned after the retry budget is spent.
	Fallback = "The network is feeling a little moody."

	// emptyReply covers a well-formed response with nothing in it.
	emptyReply = "The muse is daydreaming..."

	maxAttempts  = 3
	initialDelay = time.Second
)

// Suggester calls a generateContent-style endpoint.
type Suggester struct {
	client *resty.Client
	model  string
	apiKey string
	log    logging.Logger

	delay time.Duration
}

func New(s Settings, log logging.Logger) *Suggester {
	if log == nil {
		log = logging.Discard()
	}
	c := resty.New().
		SetBaseURL(s.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Suggester{
		client: c,
		model:  s.Model,
		apiKey: s.APIKey,
		log:    log,
		delay:  initialDelay,
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Suggest returns a caption for the draft. With a photo attached the photo
// prompt is used and the JPEG travels inline; otherwise the text-only
// prompt. Transport failures are retried with doubling backoff (1s, 2s)
// and the fixed fallback line is returned once the budget is spent. Suggest
// never returns an error.
func (s *Suggester) Suggest(ctx context.Context, imageJPEG []byte) string {
	req := generateRequest{Contents: []content{{Parts: []part{{Text: promptTextOnly}}}}}
	if len(imageJPEG) > 0 {
		req.Contents[0].Parts = []part{
			{Text: promptWithPhoto},
			{InlineData: &inlineData{
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(imageJPEG),
			}},
		}
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.delay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.Reset()

	for attempt := 1; ; attempt++ {
		text, err := s.call(ctx, &req)
		if err == nil {
			return text
		}
		s.log.Warn(ctx, "caption request failed", "attempt", attempt, "err", err)
		if attempt >= maxAttempts {
			return Fallback
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return Fallback
		}
	}
}

func (s *Suggester) call(ctx context.Context, req *generateRequest) (string, error) {
	var out generateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(req).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.model))
	if err != nil {
		return "", fmt.Errorf("caption request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("caption status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return emptyReply, nil
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return emptyReply, nil
	}
	return text, nil
}
