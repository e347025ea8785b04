package requests

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"convert-api/internal/utils/apierrors"
)

// ConvertRequest is the parsed multipart payload: the raw file plus the
// optional processing flags. It lives only for the duration of one call.
type ConvertRequest struct {
	FileBuffer        []byte
	Filename          string
	ProcessingOptions []string
}

// ParseConvertRequest decodes a multipart/form-data body into a file buffer
// and option flags. Each validation step fails fast with its own code.
// Malformed options JSON is deliberately lenient: it degrades to no options
// with a warning instead of failing the upload. No size cap is applied
// here; the whole body is buffered in memory.
func ParseConvertRequest(r *http.Request, log zerolog.Logger) (*ConvertRequest, *apierrors.Error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || !strings.Contains(contentType, "multipart/form-data") {
		return nil, apierrors.BadRequest(apierrors.CodeInvalidContentType,
			"content type must be multipart/form-data")
	}

	_, ctParams, err := mime.ParseMediaType(contentType)
	if err != nil || ctParams["boundary"] == "" {
		return nil, apierrors.BadRequest(apierrors.CodeMissingBoundary,
			"multipart boundary missing from content type")
	}

	req := &ConvertRequest{ProcessingOptions: []string{}}
	reader := multipart.NewReader(r.Body, ctParams["boundary"])
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apierrors.Internal(apierrors.CodeParsingError,
				"failed to parse multipart body", err)
		}

		switch part.FormName() {
		case "file":
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, apierrors.Internal(apierrors.CodeParsingError,
					"failed to read file part", err)
			}
			req.FileBuffer = data
			req.Filename = part.FileName()
		case "options":
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, apierrors.Internal(apierrors.CodeParsingError,
					"failed to read options part", err)
			}
			var flags []string
			if jsonErr := json.Unmarshal(data, &flags); jsonErr != nil {
				log.Warn().
					Err(jsonErr).
					Str("options", truncate(string(data), 128)).
					Msg("malformed options JSON, continuing without options")
			}
			if flags == nil {
				// Covers the JSON literal null, which unmarshals cleanly
				// into a nil slice.
				flags = []string{}
			}
			req.ProcessingOptions = flags
		}
	}

	if len(req.FileBuffer) == 0 {
		return nil, apierrors.BadRequest(apierrors.CodeNoFileFound,
			"no file found in request")
	}

	return req, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
