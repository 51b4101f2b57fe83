package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dashboard/pkg/logger"
)

const (
	TargetDirect  = "direct"
	TargetGateway = "gateway"

	maxBodySize  = 10 << 20
	maxErrorBody = 256
)

// Call один адрес, по которому можно выполнить операцию.
type Call struct {
	Target  string
	BaseURL string
	Method  string
	Path    string
	Query   url.Values
	Body    any
}

// Operation логический вызов с основным и запасным адресом.
// Какой адрес основной, решает вызывающий код, а не конфигурация.
type Operation struct {
	Name      string
	Primary   Call
	Secondary Call
}

type Result struct {
	Target     string
	StatusCode int
	Body       []byte
}

type Resolver struct {
	log     resolverLogger
	client  httpClient
	timeout time.Duration
}

func New(log resolverLogger, client httpClient, timeout time.Duration) *Resolver {
	return &Resolver{
		log:     log,
		client:  client,
		timeout: timeout,
	}
}

// Resolve пробует основной адрес, при любой ошибке делает ровно одну попытку
// по запасному. Без пауз и повторов. Если оба адреса не ответили, возвращает *Failure.
func (r *Resolver) Resolve(ctx context.Context, op Operation) (*Result, error) {
	res, primaryErr := r.execute(ctx, op.Name, op.Primary)
	if primaryErr == nil {
		return res, nil
	}

	opLog := r.log.With(
		logger.NewField("operation", op.Name),
		logger.NewField("primary", op.Primary.Target),
		logger.NewField("secondary", op.Secondary.Target),
	)

	if ctx.Err() != nil {
		ResolverFailuresTotal.WithLabelValues(op.Name).Inc()
		return nil, &Failure{Operation: op.Name, Primary: primaryErr, Secondary: ctx.Err()}
	}

	opLog.Warn("primary target failed, falling back",
		logger.NewField("error", primaryErr),
	)
	ResolverFallbacksTotal.WithLabelValues(op.Name).Inc()

	res, secondaryErr := r.execute(ctx, op.Name, op.Secondary)
	if secondaryErr == nil {
		return res, nil
	}

	ResolverFailuresTotal.WithLabelValues(op.Name).Inc()
	opLog.Warn("secondary target failed",
		logger.NewField("error", secondaryErr),
	)

	return nil, &Failure{Operation: op.Name, Primary: primaryErr, Secondary: secondaryErr}
}

func (r *Resolver) execute(ctx context.Context, operation string, call Call) (*Result, error) {
	start := time.Now()

	res, err := r.do(ctx, call)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ResolverRequestDuration.WithLabelValues(operation, call.Target, outcome).Observe(time.Since(start).Seconds())

	return res, err
}

func (r *Resolver) do(ctx context.Context, call Call) (*Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := newRequest(ctx, call)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", call.Target, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", call.Target, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			Target:     call.Target,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	return &Result{
		Target:     call.Target,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func newRequest(ctx context.Context, call Call) (*http.Request, error) {
	u, err := url.Parse(strings.TrimRight(call.BaseURL, "/") + call.Path)
	if err != nil {
		return nil, err
	}
	if len(call.Query) > 0 {
		u.RawQuery = call.Query.Encode()
	}

	method := call.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
