package bale

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"balebridge/internal/core/domain"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// RawClient posts plain JSON bodies to bot API methods the shared client does
// not cover, and downloads files.
type RawClient struct {
	http  *resty.Client
	token string
}

func NewRawClient(creds domain.Credentials, apiURL string, timeout time.Duration) (*RawClient, error) {
	if creds.Token == "" {
		return nil, domain.ErrMissingToken
	}

	c := resty.New().
		SetBaseURL(baseURL(apiURL)).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &RawClient{http: c, token: creds.Token}, nil
}

func (c *RawClient) PostJSON(ctx context.Context, method string, payload any) (map[string]any, error) {
	l := log.With().Str("method", method).Logger()

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/bot%s/%s", c.token, method))
	if err != nil {
		err = &domain.RemoteCallError{Method: method, Err: err}
		l.Error().Err(err).Send()
		return nil, err
	}

	out := map[string]any{}
	if len(res.Body()) > 0 {
		if err := json.Unmarshal(res.Body(), &out); err != nil {
			err = &domain.RemoteCallError{
				Method:     method,
				StatusCode: res.StatusCode(),
				Err:        fmt.Errorf("error decoding response: %w", err),
			}
			l.Error().Err(err).Send()
			return nil, err
		}
	}

	if res.IsError() || out["ok"] == false {
		err = &domain.RemoteCallError{Method: method, StatusCode: res.StatusCode(), Body: out}
		l.Error().Err(err).Send()
		return nil, err
	}

	l.Debug().Int("status", res.StatusCode()).Msg("call succeeded")

	return out, nil
}

// Download returns the byte content behind an absolute file URL.
func (c *RawClient) Download(ctx context.Context, url string) ([]byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		err = fmt.Errorf("error executing request: %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	if res.StatusCode() != http.StatusOK {
		err = fmt.Errorf("unexpected status code on download: %d", res.StatusCode())
		log.Error().Err(err).Send()
		return nil, err
	}

	return res.Body(), nil
}
