package lambdaproxy

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Post("/posts/{postId}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Post", chi.URLParam(r, "postId"))
		w.Header().Set("X-Req", middleware.GetReqID(r.Context()))
		w.Header().Set("X-Query", r.URL.Query().Get("q"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	})
	r.Get("/binary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0xff, 0xfe, 0x00})
	})
	return r
}

func header(resp events.APIGatewayProxyResponse, key string) string {
	if v, ok := resp.Headers[key]; ok {
		return v
	}
	if vs := resp.MultiValueHeaders[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func TestProxy_RoundTrip(t *testing.T) {
	a := New(echoRouter())

	resp, err := a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodPost,
		Path:                  "/posts/7",
		Body:                  `{"title":"t"}`,
		Headers:               map[string]string{"Content-Type": "application/json"},
		QueryStringParameters: map[string]string{"q": "x"},
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "gw-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"title":"t"}`, resp.Body)
	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, "7", header(resp, "X-Post"))
	assert.Equal(t, "gw-123", header(resp, "X-Req"))
	assert.Equal(t, "x", header(resp, "X-Query"))
}

func TestProxy_ClientRequestIDWins(t *testing.T) {
	a := New(echoRouter())

	resp, err := a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           "/posts/1",
		Headers:        map[string]string{requestIDHeader: "client-1"},
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "client-1", header(resp, "X-Req"))
}

func TestProxy_Base64Body(t *testing.T) {
	a := New(echoRouter())

	resp, err := a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/posts/1",
		Body:            base64.StdEncoding.EncodeToString([]byte(`"hello"`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, resp.Body)

	_, err = a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/posts/1",
		Body:            "***",
		IsBase64Encoded: true,
	})
	assert.Error(t, err)
}

func TestProxy_BinaryResponseIsEncoded(t *testing.T) {
	a := New(echoRouter())

	resp, err := a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/binary"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, resp.IsBase64Encoded)

	raw, err := base64.StdEncoding.DecodeString(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00}, raw)
}

func TestProxy_UnknownRoute(t *testing.T) {
	a := New(echoRouter())

	resp, err := a.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
