// Command serve hosts the canvas demo for local development.
//
// Build the demo into the served directory first:
//
//	GOOS=js GOARCH=wasm go build -o out/canvasdemo.wasm ./cmd/canvasdemo
//	cp "$(go env GOROOT)/misc/wasm/wasm_exec.js" out/
package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"path"
)

//go:embed index.html
var indexHTML []byte

func main() {
	dir := flag.String("dir", "./out", "Directory holding canvasdemo.wasm and wasm_exec.js")
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	log.Printf("Serving %s on http://localhost%s", *dir, *addr)
	log.Fatal(http.ListenAndServe(*addr, newHandler(http.Dir(*dir))))
}

func newHandler(root http.FileSystem) http.Handler {
	fs := http.FileServer(root)
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.Header().Add("Cache-Control", "no-cache")
		switch {
		case req.URL.Path == "/" || req.URL.Path == "/index.html":
			resp.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = resp.Write(indexHTML)
			return
		case path.Ext(req.URL.Path) == ".wasm":
			// streaming instantiation refuses anything else
			resp.Header().Set("Content-Type", "application/wasm")
		}
		fs.ServeHTTP(resp, req)
	})
}
