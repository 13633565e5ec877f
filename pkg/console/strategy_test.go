package console

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want Strategy
	}{
		{"no capabilities", Capabilities{}, ANSI},
		{"clear only", Capabilities{Clear: true}, Severity},
		{"chrome", Capabilities{Chrome: true}, CSS},
		{"firebug", Capabilities{Firebug: true}, CSS},
		{"exception", Capabilities{Exception: true}, CSS},
		{"clear and chrome", Capabilities{Clear: true, Chrome: true}, CSS},
		{"clear and exception", Capabilities{Clear: true, Exception: true}, CSS},
		{"no color", Capabilities{NoColor: true}, Plain},
		{"clear beats no color", Capabilities{Clear: true, NoColor: true}, Severity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.caps); got != tt.want {
				t.Errorf("Detect(%+v) = %v, want %v", tt.caps, got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		want     Strategy
		explicit bool
		wantErr  bool
	}{
		{"", ANSI, false, false},
		{"auto", ANSI, false, false},
		{"ANSI", ANSI, true, false},
		{"plain", Plain, true, false},
		{" severity ", Severity, true, false},
		{"css", CSS, true, false},
		{"rainbow", ANSI, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, explicit, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want || explicit != tt.explicit {
				t.Errorf("ParseStrategy(%q) = (%v, %v), want (%v, %v)", tt.input, got, explicit, tt.want, tt.explicit)
			}
		})
	}
}

func TestStrategy_String(t *testing.T) {
	for _, s := range Strategies() {
		parsed, _, err := ParseStrategy(s.String())
		if err != nil || parsed != s {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", s.String(), parsed, err, s)
		}
	}
	if got := Strategy(42).String(); got != "Strategy(42)" {
		t.Errorf("String() = %q, want %q", got, "Strategy(42)")
	}
}

func TestParseCapabilities(t *testing.T) {
	caps, err := ParseCapabilities("clear, Chrome,,no-color")
	if err != nil {
		t.Fatalf("ParseCapabilities() error = %v", err)
	}
	want := Capabilities{Clear: true, Chrome: true, NoColor: true}
	if caps != want {
		t.Errorf("ParseCapabilities() = %+v, want %+v", caps, want)
	}

	if _, err := ParseCapabilities("clear,opera"); err == nil {
		t.Error("ParseCapabilities(unknown) expected error")
	}
}
