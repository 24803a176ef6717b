package http

import (
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/signoff/internal/project"
)

// clientAccessPrefix is the route whose last segment is a project access token.
const clientAccessPrefix = "/api/v1/client/access/"

// requestLogger is chi's access log with client access tokens fingerprinted.
func requestLogger(out io.Writer) func(http.Handler) http.Handler {
	if out == nil {
		out = os.Stdout
	}

	return middleware.RequestLogger(maskingFormatter{
		next: &middleware.DefaultLogFormatter{Logger: log.New(out, "", log.LstdFlags)},
	})
}

type maskingFormatter struct {
	next middleware.LogFormatter
}

func (f maskingFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	path := maskAccessToken(r.URL.Path)
	if path == r.URL.Path {
		return f.next.NewLogEntry(r)
	}

	masked := r.Clone(r.Context())
	masked.URL.Path = path
	masked.URL.RawPath = ""
	masked.RequestURI = masked.URL.RequestURI()

	return f.next.NewLogEntry(masked)
}

func maskAccessToken(path string) string {
	token, ok := strings.CutPrefix(path, clientAccessPrefix)
	if !ok || token == "" {
		return path
	}

	rest := ""
	if i := strings.IndexByte(token, '/'); i >= 0 {
		token, rest = token[:i], token[i:]
	}

	return clientAccessPrefix + project.Fingerprint(token) + rest
}
