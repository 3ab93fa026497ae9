package lambdaproxy

import (
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// requestIDHeader совпадает с заголовком, который читает chi middleware.RequestID.
const requestIDHeader = "X-Request-Id"

// New оборачивает handler для lambda.Start. Идентификатор запроса
// API Gateway пробрасывается в X-Request-Id, если клиент его не передал.
func New(handler http.Handler) *httpadapter.HandlerAdapter {
	return httpadapter.New(withGatewayRequestID(handler))
}

func withGatewayRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(requestIDHeader) == "" {
			if gw, ok := core.GetAPIGatewayContextFromContext(r.Context()); ok && gw.RequestID != "" {
				r.Header.Set(requestIDHeader, gw.RequestID)
			}
		}
		next.ServeHTTP(w, r)
	})
}
