package resolver

import (
	"net/http"

	"dashboard/pkg/logger"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type resolverLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
