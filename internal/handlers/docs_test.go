package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	_ "github.com/epeers/portfolio-wizard/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocCoversEveryRoute(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	documented := 0
	for _, route := range router.Routes() {
		switch {
		case route.Path == "/health", route.Path == "/metrics", strings.HasPrefix(route.Path, "/swagger/"):
			continue
		}
		path := ginParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.Truef(t, ok, "no swagger entry for %s", path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.Truef(t, ok, "no swagger %s operation for %s", route.Method, path)
		documented++
	}
	assert.Equal(t, 24, documented)
}
