package conversion

import "testing"

func TestMakeKey(t *testing.T) {
	if got := MakeKey(FormatJPG, FormatPNG); got != "jpg-to-png" {
		t.Errorf("MakeKey(jpg, png) = %q, want jpg-to-png", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name       string
		key        Key
		wantInput  Format
		wantOutput Format
		wantErr    bool
	}{
		{name: "simple pair", key: "jpg-to-png", wantInput: FormatJPG, wantOutput: FormatPNG},
		{name: "multi-segment output", key: "html-to-md", wantInput: FormatHTML, wantOutput: FormatMD},
		{name: "missing separator", key: "jpgpng", wantErr: true},
		{name: "empty input side", key: "-to-png", wantErr: true},
		{name: "empty output side", key: "jpg-to-", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := ParseKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if in != tt.wantInput || out != tt.wantOutput {
				t.Errorf("ParseKey(%q) = (%q, %q), want (%q, %q)", tt.key, in, out, tt.wantInput, tt.wantOutput)
			}
		})
	}
}

func TestFormatMIME(t *testing.T) {
	if got := FormatPNG.MIME(); got != "image/png" {
		t.Errorf("png MIME = %q", got)
	}
	if got := FormatXLSX.MIME(); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("xlsx MIME = %q", got)
	}
	if got := Format("weird").MIME(); got != "application/octet-stream" {
		t.Errorf("unknown format MIME = %q, want octet-stream fallback", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  JPG "); got != FormatJPG {
		t.Errorf("Normalize = %q, want jpg", got)
	}
}
