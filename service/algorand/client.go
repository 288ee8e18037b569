package algorand

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var errNotFound = errors.New("not found")

type apiError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("algorand: %d %s", e.Status, e.Message)
}

func (e *apiError) Is(target error) bool {
	return target == errNotFound && e.Status == http.StatusNotFound
}

// node wraps the algod and indexer endpoints behind one limiter and one
// circuit breaker.
type node struct {
	algod   *resty.Client
	indexer *resty.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func newNode(cfg Config, onStateChange func(name string, from, to gobreaker.State)) *node {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &node{
		algod: resty.New().
			SetBaseURL(cfg.AlgodURL).
			SetHeader("X-Algo-API-Token", cfg.AlgodToken).
			SetTimeout(cfg.Timeout),
		indexer: resty.New().
			SetBaseURL(cfg.IndexerURL).
			SetHeader("X-Indexer-API-Token", cfg.IndexerToken).
			SetTimeout(cfg.Timeout),
		limiter: rate.NewLimiter(limit, 1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "algorand-node",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// a missing account or asset says nothing about node health
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, errNotFound)
			},
			OnStateChange: onStateChange,
		}),
	}
}

func (n *node) get(ctx context.Context, c *resty.Client, path string, params map[string]string, query map[string]string, out any) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := n.breaker.Execute(func() (any, error) {
		resp, err := c.R().
			SetContext(ctx).
			SetPathParams(params).
			SetQueryParams(query).
			SetResult(out).
			SetError(&apiError{}).
			Get(path)
		if err != nil {
			return nil, err
		}

		if resp.IsError() {
			e, _ := resp.Error().(*apiError)
			if e == nil {
				e = &apiError{}
			}

			e.Status = resp.StatusCode()
			if e.Message == "" {
				e.Message = http.StatusText(e.Status)
			}

			return nil, e
		}

		return nil, nil
	})

	return err
}
