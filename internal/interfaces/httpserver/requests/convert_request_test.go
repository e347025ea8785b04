package requests

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"convert-api/internal/utils/apierrors"
)

func multipartRequest(t *testing.T, file []byte, filename, options string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if file != nil {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if options != "" {
		if err := writer.WriteField("options", options); err != nil {
			t.Fatalf("write options part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest("POST", "/v1/convert/jpg-to-png", &body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	return r
}

func TestParseConvertRequest(t *testing.T) {
	req, apiErr := ParseConvertRequest(
		multipartRequest(t, []byte("file-bytes"), "photo.jpg", `["optimize-size"]`),
		zerolog.Nop())
	if apiErr != nil {
		t.Fatalf("ParseConvertRequest() error = %v", apiErr)
	}
	if string(req.FileBuffer) != "file-bytes" {
		t.Errorf("file buffer = %q", req.FileBuffer)
	}
	if req.Filename != "photo.jpg" {
		t.Errorf("filename = %q", req.Filename)
	}
	if len(req.ProcessingOptions) != 1 || req.ProcessingOptions[0] != "optimize-size" {
		t.Errorf("options = %v", req.ProcessingOptions)
	}
}

func TestParseConvertRequestNoOptions(t *testing.T) {
	req, apiErr := ParseConvertRequest(
		multipartRequest(t, []byte("file-bytes"), "doc.txt", ""),
		zerolog.Nop())
	if apiErr != nil {
		t.Fatalf("ParseConvertRequest() error = %v", apiErr)
	}
	if req.ProcessingOptions == nil || len(req.ProcessingOptions) != 0 {
		t.Errorf("options = %#v, want empty non-nil slice", req.ProcessingOptions)
	}
}

func TestParseConvertRequestMalformedOptionsDegrade(t *testing.T) {
	tests := []struct {
		name    string
		options string
	}{
		{name: "not json", options: "optimize-size"},
		{name: "wrong json shape", options: `{"optimize": true}`},
		{name: "truncated json", options: `["optimize-size`},
		{name: "json null", options: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, apiErr := ParseConvertRequest(
				multipartRequest(t, []byte("file-bytes"), "photo.jpg", tt.options),
				zerolog.Nop())
			if apiErr != nil {
				t.Fatalf("malformed options rejected the upload: %v", apiErr)
			}
			if req.ProcessingOptions == nil || len(req.ProcessingOptions) != 0 {
				t.Errorf("options = %#v, want empty non-nil slice", req.ProcessingOptions)
			}
			if string(req.FileBuffer) != "file-bytes" {
				t.Errorf("file buffer lost: %q", req.FileBuffer)
			}
		})
	}
}

func TestParseConvertRequestFailures(t *testing.T) {
	noFile := multipartRequest(t, nil, "", `["optimize-size"]`)

	wrongType := httptest.NewRequest("POST", "/v1/convert/jpg-to-png", bytes.NewBufferString(`{}`))
	wrongType.Header.Set("Content-Type", "application/json")

	noContentType := httptest.NewRequest("POST", "/v1/convert/jpg-to-png", bytes.NewBufferString("x"))

	noBoundary := httptest.NewRequest("POST", "/v1/convert/jpg-to-png", bytes.NewBufferString("x"))
	noBoundary.Header.Set("Content-Type", "multipart/form-data")

	tests := []struct {
		name     string
		request  *http.Request
		wantCode string
	}{
		{name: "json body", request: wrongType, wantCode: apierrors.CodeInvalidContentType},
		{name: "missing content type", request: noContentType, wantCode: apierrors.CodeInvalidContentType},
		{name: "missing boundary", request: noBoundary, wantCode: apierrors.CodeMissingBoundary},
		{name: "no file part", request: noFile, wantCode: apierrors.CodeNoFileFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, apiErr := ParseConvertRequest(tt.request, zerolog.Nop())
			if apiErr == nil {
				t.Fatal("ParseConvertRequest() succeeded, want error")
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", apiErr.Status)
			}
		})
	}
}

func TestParseConvertRequestEmptyFilePart(t *testing.T) {
	_, apiErr := ParseConvertRequest(
		multipartRequest(t, []byte{}, "empty.bin", ""),
		zerolog.Nop())
	if apiErr == nil || apiErr.Code != apierrors.CodeNoFileFound {
		t.Fatalf("empty file part: got %v, want NO_FILE_FOUND", apiErr)
	}
}
