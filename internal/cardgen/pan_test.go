package cardgen

import (
	"strconv"
	"testing"
)

func TestLastN(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"4242424242424242", 4, "4242"},
		{"5200828282828210", 4, "8210"},
		{"123", 4, "123"},
		{"", 4, ""},
	}
	for _, c := range cases {
		if got := LastN(c.in, c.n); got != c.want {
			t.Fatalf("LastN(%q, %d) = %q want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestMaskPAN(t *testing.T) {
	cases := []struct{ in, out string }{
		{"4242424242424242", "424242******4242"},
		{"123456789", "*****6789"},
		{"1234", "****"},
		{"", ""},
	}
	for _, c := range cases {
		if got := MaskPAN(c.in); got != c.out {
			t.Fatalf("MaskPAN(%q) = %q want %q", c.in, got, c.out)
		}
	}
}

func TestSecurityCode_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := SecurityCode()
		n, err := strconv.Atoi(code)
		if err != nil || len(code) != 3 {
			t.Fatalf("code %q is not 3 digits", code)
		}
		if n < 100 || n > 999 {
			t.Fatalf("code %d out of range", n)
		}
	}
}
