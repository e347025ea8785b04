package conversion

import (
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name        string
		raw         []string
		wantKnown   []Option
		wantUnknown []string
	}{
		{
			name:      "all known flags",
			raw:       []string{"optimize-size", "improve-quality", "reduce-noise"},
			wantKnown: []Option{OptionOptimizeSize, OptionImproveQuality, OptionReduceNoise},
		},
		{
			name:        "unknown flags preserved for logging",
			raw:         []string{"optimize-size", "make-it-pop"},
			wantKnown:   []Option{OptionOptimizeSize},
			wantUnknown: []string{"make-it-pop"},
		},
		{
			name:        "only unknown flags",
			raw:         []string{"sharpen"},
			wantUnknown: []string{"sharpen"},
		},
		{
			name: "empty input",
			raw:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			known, unknown := ParseOptions(tt.raw)
			if !reflect.DeepEqual(known, tt.wantKnown) {
				t.Errorf("known = %v, want %v", known, tt.wantKnown)
			}
			if !reflect.DeepEqual(unknown, tt.wantUnknown) {
				t.Errorf("unknown = %v, want %v", unknown, tt.wantUnknown)
			}
		})
	}
}

func TestJPEGParamsWithOptions(t *testing.T) {
	base := JPEGParams{Quality: 85}

	got := base.WithOptions([]Option{OptionOptimizeSize}).(JPEGParams)
	if got.Quality != 60 {
		t.Errorf("optimize-size quality = %d, want 60", got.Quality)
	}

	got = base.WithOptions([]Option{OptionImproveQuality}).(JPEGParams)
	if got.Quality != 95 {
		t.Errorf("improve-quality quality = %d, want 95", got.Quality)
	}

	// Receiver stays untouched.
	if base.Quality != 85 {
		t.Errorf("base quality mutated to %d", base.Quality)
	}
}

func TestGIFParamsWithOptions(t *testing.T) {
	base := GIFParams{NumColors: 128}
	got := base.WithOptions([]Option{OptionOptimizeSize}).(GIFParams)
	if got.NumColors != 64 {
		t.Errorf("optimize-size palette = %d, want 64", got.NumColors)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{name: "valid jpeg", params: JPEGParams{Quality: 85}},
		{name: "jpeg quality too low", params: JPEGParams{Quality: 0}, wantErr: true},
		{name: "jpeg quality too high", params: JPEGParams{Quality: 101}, wantErr: true},
		{name: "valid gif", params: GIFParams{NumColors: 256}},
		{name: "gif palette too small", params: GIFParams{NumColors: 1}, wantErr: true},
		{name: "valid pdf", params: PDFParams{PageSize: "A4", MarginMM: 15, FontSize: 11}},
		{name: "pdf unknown page size", params: PDFParams{PageSize: "Tabloid"}, wantErr: true},
		{name: "csv missing delimiter", params: CSVParams{}, wantErr: true},
		{name: "xlsx empty sheet name", params: XLSXParams{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
