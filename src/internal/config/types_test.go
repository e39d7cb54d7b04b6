package config

import "testing"

func TestParsePeerMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PeerMode
		wantErr bool
	}{
		{"BGP active", "bgpactive", BgpActive, false},
		{"BGP passive", "bgppassive", BgpPassive, false},
		{"BMP passive", "bmppassive", BmpPassive, false},
		{"BMP active", "bmpactive", BmpActive, false},
		{"Trailing tokens ignored", "bgppassive snoop", BgpPassive, false},
		{"Unknown mode", "tcpdump", 0, true},
		{"Empty string", "", 0, true},
		{"Leading space", " bgpactive", 0, true},
		{"Case sensitive", "BgpActive", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeerMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePeerMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if err.Error() != "invalid mode" {
					t.Errorf("Expected 'invalid mode' error, got %q", err.Error())
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePeerMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHistoryMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    HistoryChangeMode
		wantErr bool
	}{
		{"Every update", "every", EveryUpdate, false},
		{"Only differing", "differ", OnlyDiffer, false},
		{"Trailing tokens ignored", "differ please", OnlyDiffer, false},
		{"Unknown mode", "sometimes", 0, true},
		{"Empty string", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHistoryMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHistoryMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if err.Error() != "invalid history mode" {
					t.Errorf("Expected 'invalid history mode' error, got %q", err.Error())
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHistoryMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPeerModeString(t *testing.T) {
	modes := map[PeerMode]string{
		BgpActive:  "bgpactive",
		BgpPassive: "bgppassive",
		BmpPassive: "bmppassive",
		BmpActive:  "bmpactive",
	}
	for mode, want := range modes {
		if got := mode.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestHistoryChangeModeString(t *testing.T) {
	if got := EveryUpdate.String(); got != "every" {
		t.Errorf("Expected 'every', got %q", got)
	}
	if got := OnlyDiffer.String(); got != "differ" {
		t.Errorf("Expected 'differ', got %q", got)
	}
}
