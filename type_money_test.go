package equity

import "testing"

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		amount   Money
		currency string
		want     string
	}{
		{M(1234.56), "GBP", "£1,234.56"},
		{M(1234.565), "GBP", "£1,234.57"},
		{M(0), "GBP", "£0.00"},
		{M(7.935), "USD", "$7.94"},
		{M(12.5), "ZZZ", "12.50 ZZZ"},
	}
	for _, tc := range testCases {
		if got := tc.amount.Format(tc.currency); got != tc.want {
			t.Errorf("%s.Format(%s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestMoney_FormatWhole(t *testing.T) {
	if got, want := M(24644.925).FormatWhole("GBP"), "£24,645"; got != want {
		t.Errorf("FormatWhole() = %q, want %q", got, want)
	}
}

func TestMoney_Thousands(t *testing.T) {
	testCases := []struct {
		amount Money
		want   int64
	}{
		{M(0), 0},
		{M(499.99), 0},
		{M(500), 1},
		{M(72895), 73},
		{M(1234567.89), 1235},
	}
	for _, tc := range testCases {
		if got := tc.amount.Thousands(); got != tc.want {
			t.Errorf("%s.Thousands() = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestMoney_Gap(t *testing.T) {
	testCases := []struct {
		price, reference Money
		want             Money
	}{
		{M(7.935), M(6), M(1.935)},
		{M(6), M(6), M(0)},
		{M(5), M(6), M(0)},
	}
	for _, tc := range testCases {
		if got := tc.price.Gap(tc.reference); !got.Equal(tc.want) {
			t.Errorf("%s.Gap(%s) = %s, want %s", tc.price, tc.reference, got, tc.want)
		}
	}
}

func TestQuantity_Floor(t *testing.T) {
	if got := Q(-12.5).floor(); !got.IsZero() {
		t.Errorf("floor(-12.5) = %s, want 0", got)
	}
	if got := Q(12.5).floor(); !got.Equal(Q(12.5)) {
		t.Errorf("floor(12.5) = %s, want 12.5", got)
	}
}
