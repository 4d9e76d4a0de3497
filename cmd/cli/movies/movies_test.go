package movies

import "testing"

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2010-07-16", "2010-07-16T00:00:00Z", false},
		{"2010-07-16T12:30:00Z", "2010-07-16T12:30:00Z", false},
		{"", "", true},
		{"16/07/2010", "", true},
		{"not a date", "", true},
	}
	for _, tt := range tests {
		got, err := parseReleaseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseReleaseDate(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseReleaseDate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseReleaseDate(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
