package equity

import "testing"

func TestParseRate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Rate
		wantErr bool
	}{
		{"0.05", Percent(5), false},
		{"5%", Percent(5), false},
		{" 12.5 % ", R(0.125), false},
		{"1", Percent(100), false},
		{"0", R(0), false},
		{"five", Rate{}, true},
		{"%", Rate{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseRate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && !got.Equal(tc.want) {
			t.Errorf("ParseRate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseRates(t *testing.T) {
	rates, err := ParseRates("0%, 5%,0.1,")
	if err != nil {
		t.Fatalf("ParseRates() error: %v", err)
	}
	want := []Rate{Percent(0), Percent(5), Percent(10)}
	if len(rates) != len(want) {
		t.Fatalf("ParseRates() = %v, want %v", rates, want)
	}
	for i := range want {
		if !rates[i].Equal(want[i]) {
			t.Errorf("rate %d = %s, want %s", i, rates[i], want[i])
		}
	}
	if _, err := ParseRates("5%,x"); err == nil {
		t.Error("ParseRates(5%,x) succeeded")
	}
}

func TestRate_String(t *testing.T) {
	testCases := []struct {
		rate Rate
		want string
	}{
		{Percent(5), "5%"},
		{R(0.125), "12.5%"},
		{R(0), "0%"},
		{R(1), "100%"},
	}
	for _, tc := range testCases {
		if got := tc.rate.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
