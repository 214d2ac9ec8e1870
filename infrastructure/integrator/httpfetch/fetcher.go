package httpfetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBodyLen = 512

// Fetcher é o cliente HTTP compartilhado pelos adapters: timeout por
// requisição, circuit breaker por plataforma e rate limiting para respeitar
// os limites da API. A política de retry fica com o chamador.
type Fetcher struct {
	platform domain.Platform
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	limiter  *rate.Limiter
}

func New(platform domain.Platform, timeout time.Duration, requestsPerSecond float64) *Fetcher {
	settings := gobreaker.Settings{
		Name:     string(platform),
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"platform": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("sync: circuit breaker state changed")
		},
	}

	return &Fetcher{
		platform: platform,
		client:   &http.Client{Timeout: timeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// GetJSON faz um GET e decodifica o corpo JSON em out.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out interface{}) error {
	return f.do(ctx, http.MethodGet, rawURL, headers, nil, out)
}

// PostJSON faz um POST com corpo JSON e decodifica a resposta em out.
func (f *Fetcher) PostJSON(ctx context.Context, rawURL string, headers map[string]string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
	}

	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"

	return f.do(ctx, http.MethodPost, rawURL, headers, payload, out)
}

// PostForm faz um POST application/x-www-form-urlencoded (troca de token
// OAuth) e decodifica a resposta em out.
func (f *Fetcher) PostForm(ctx context.Context, rawURL string, form url.Values, out interface{}) error {
	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}

	return f.do(ctx, http.MethodPost, rawURL, headers, []byte(form.Encode()), out)
}

func (f *Fetcher) do(ctx context.Context, method, rawURL string, headers map[string]string, body []byte, out interface{}) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return nil, &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
		}

		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &integrator.TransportError{
				Platform:   f.platform,
				URL:        rawURL,
				StatusCode: resp.StatusCode,
				Body:       truncate(string(respBody), maxErrorBodyLen),
			}
		}

		return respBody, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
		}
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(result.([]byte), out); err != nil {
		return &integrator.TransportError{Platform: f.platform, URL: rawURL, Err: err}
	}

	return nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max]
}
