package privacy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMaskName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jo Smith", "J* S***"},
		{"John", "J***"},
		{"A", "A*"},
		{"  maria   de  souza ", "m*** d* s***"},
		{"", FallbackName},
		{"   \t\n", FallbackName},
		{"Émile Zola", "É*** Z***"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskName(tc.in))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"555-123-4567", "***-***-4567"},
		{"(11) 98765-4321", "***-***-4321"},
		{"12", HiddenPhone},
		{"123", HiddenPhone},
		{"1234", "***-***-1234"},
		{"", HiddenPhone},
		{"no digits", HiddenPhone},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskPhone(tc.in))
		})
	}
}

func TestMaskName_NeverEchoesInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z]{1,12}`), 1, 4).Draw(t, "words")
		name := strings.Join(words, " ")

		got := MaskName(name)
		if got == name {
			t.Fatalf("MaskName(%q) returned its input unchanged", name)
		}
		if len(strings.Fields(got)) != len(words) {
			t.Fatalf("MaskName(%q) = %q, want %d tokens", name, got, len(words))
		}
	})
}

func TestMaskName_TotalOnArbitraryInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.String().Draw(t, "in")
		got := MaskName(in)
		if got == "" {
			t.Fatalf("MaskName(%q) returned an empty string", in)
		}
	})
}

func TestMaskPhone_NeverEchoesInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phone := rapid.StringMatching(`[0-9]{4,15}`).Draw(t, "phone")

		got := MaskPhone(phone)
		if got == phone {
			t.Fatalf("MaskPhone(%q) returned its input unchanged", phone)
		}
		if !strings.HasSuffix(got, phone[len(phone)-4:]) {
			t.Fatalf("MaskPhone(%q) = %q, want last four digits kept", phone, got)
		}
	})
}

func TestMaskPhone_TotalOnArbitraryInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.String().Draw(t, "in")
		got := MaskPhone(in)
		if got != HiddenPhone && !strings.HasPrefix(got, "***-***-") {
			t.Fatalf("MaskPhone(%q) = %q, unexpected shape", in, got)
		}
	})
}
