package enmetric

import "testing"

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		val     uint64
		omitDec bool
		want    string
	}{
		{0, false, "0.00"},
		{0, true, "0"},
		{999, false, "999.00"},
		{999, true, "999"},
		{1000, false, "1.00K"},
		{1000, true, "1K"},
		{1023, false, "1.02K"},
		{1500, false, "1.50K"},
		{2500000, false, "2.50M"},
		{1000000, true, "1M"},
		{999999999, true, "999.99M"},
		{1000000000, true, "1G"},
	}
	for _, c := range cases {
		got, err := Format(c.val, 1, c.omitDec, 1000, 0)
		if err != nil {
			t.Fatalf("Format(%d): %v", c.val, err)
		}
		if got != c.want {
			t.Errorf("Format(%d, omitDec=%v) = %q, want %q", c.val, c.omitDec, got, c.want)
		}
	}
}

func TestFormatBinary(t *testing.T) {
	cases := []struct {
		val     uint64
		omitDec bool
		want    string
	}{
		{1023, false, "1023.00"}, // unscaled output carries no unit prefix
		{1024, true, "1Ki"},
		{1536, false, "1.50Ki"},
		{1 << 20, true, "1Mi"},
		{1<<20 + 1<<19, false, "1.50Mi"},
		{1 << 30, true, "1Gi"},
	}
	for _, c := range cases {
		got, err := Format(c.val, 1, c.omitDec, 1024, 'i')
		if err != nil {
			t.Fatalf("Format(%d): %v", c.val, err)
		}
		if got != c.want {
			t.Errorf("Format(%d, omitDec=%v) = %q, want %q", c.val, c.omitDec, got, c.want)
		}
	}
}

func TestFormatRejectsZeroBases(t *testing.T) {
	if _, err := Format(1, 0, false, 1000, 0); err == nil {
		t.Error("zero decimal must be rejected")
	}
	if _, err := Format(1, 1, false, 0, 0); err == nil {
		t.Error("zero mult must be rejected")
	}
}

func TestFormatFixedPointInput(t *testing.T) {
	// val carries two decimal digits: 123456 with decimal=100 is 1234.56.
	got, err := Format(123456, 100, false, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.23K" {
		t.Errorf("fixed-point input = %q, want %q", got, "1.23K")
	}
}

func TestConvenienceWrappers(t *testing.T) {
	if got := SI(1000); got != "1.00K" {
		t.Errorf("SI(1000) = %q", got)
	}
	if got := IEC(1024); got != "1.00Ki" {
		t.Errorf("IEC(1024) = %q", got)
	}
	if got := SI(12); got != "12.00" {
		t.Errorf("SI(12) = %q", got)
	}
}

func TestLargeValuesDoNotOverflow(t *testing.T) {
	const max = ^uint64(0)
	if s, err := Format(max, 1, false, 1000, 0); err != nil || s == "" {
		t.Errorf("max uint64 decimal: %q, %v", s, err)
	}
	if s, err := Format(max, 1, false, 1024, 'i'); err != nil || s == "" {
		t.Errorf("max uint64 binary: %q, %v", s, err)
	}
}
