package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/Belphemur/ShowFinder/internal/config"
)

// NewUTF8Reader wraps a response body with character encoding conversion to UTF-8.
//
// JSON is UTF-8 unless the server says otherwise, so the body is only transcoded
// when the Content-Type carries an explicit non-UTF-8 charset label (e.g.
// "application/json; charset=iso-8859-1"). Unlabelled bodies are never sniffed.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		logger := config.GetLogger()
		logger.Debug().Err(err).Str("contentType", contentType).Msg("Unparsable Content-Type, assuming UTF-8")
		return body, nil
	}

	label := strings.TrimSpace(params["charset"])
	if label == "" {
		return body, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		logger := config.GetLogger()
		logger.Warn().Str("charset", label).Msg("Unknown charset label, assuming UTF-8")
		return body, nil
	}
	if name == "utf-8" {
		return body, nil
	}

	return charset.NewReaderLabel(label, body)
}
