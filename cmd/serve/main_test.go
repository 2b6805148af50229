package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	handler := newHandler(http.FS(fstest.MapFS{
		"canvasdemo.wasm": &fstest.MapFile{Data: []byte("\x00asm")},
		"wasm_exec.js":    &fstest.MapFile{Data: []byte("// go")},
	}))

	for _, tc := range []struct {
		path        string
		contentType string
		body        string
	}{
		{"/", "text/html; charset=utf-8", ""},
		{"/canvasdemo.wasm", "application/wasm", "\x00asm"},
		{"/wasm_exec.js", "", "// go"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
			if tc.contentType != "" {
				assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			}
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "canvasdemo.wasm")
			}
		})
	}
}
