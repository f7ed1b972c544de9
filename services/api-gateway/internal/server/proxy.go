package server

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
)

// CreateProxy создает обратный прокси на сервис. Путь запроса передается
// без изменений: сервисы сами обслуживают префикс /api.
func CreateProxy(targetURL string) (http.Handler, error) {
	target, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid target URL %q: %w", targetURL, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	baseDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		baseDirector(req)
		req.Host = target.Host

		// trace_id уже проставлен LoggerMiddleware
		if traceID := contextkeys.TraceIDFromContext(req.Context()); traceID != "" {
			req.Header.Set(contextkeys.TraceIDHeader, traceID)
		}
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		contextkeys.LoggerFromContext(r.Context()).Error("Upstream request failed", err, logging.Fields{
			"upstream": target.Host,
		})
		httpkit.WriteErrorBody(w, http.StatusBadGateway, httpkit.ErrorBody{
			Error:  "Upstream service is unavailable",
			Reason: "BAD_GATEWAY",
		})
	}

	return proxy, nil
}
