package interpret

import (
	"errors"
	"testing"

	"trackerd/internal/core"
)

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain integer", "I spent 500 on groceries", "500"},
		{"decimal", "paid 99.95 for shoes", "99.95"},
		{"dollar marker", "bought a book for $12.50", "12.50"},
		{"rupee marker", "spent ₹250 on snacks", "250"},
		{"rs marker", "Rs. 1200 electricity bill", "1200"},
		{"thousand scale", "Received 15000 from salary", "15000"},
		{"first token wins", "spent 20 on 3 coffees", "20"},
		{"amount mid sentence", "yesterday I paid 42 to the plumber", "42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractAmount(tc.text)
			if err != nil {
				t.Fatalf("ExtractAmount(%q): %v", tc.text, err)
			}
			if got.String() != tc.want {
				t.Fatalf("ExtractAmount(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractAmountNotFound(t *testing.T) {
	for _, text := range []string{
		"no numbers here",
		"",
		"spent some money on groceries",
		"spent 0 on nothing", // zero can never be a valid amount
	} {
		if _, err := ExtractAmount(text); !errors.Is(err, core.ErrAmountNotFound) {
			t.Fatalf("ExtractAmount(%q): expected ErrAmountNotFound, got %v", text, err)
		}
	}
}
