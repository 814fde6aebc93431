package keypad

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	samples := []struct {
		name   string
		input  string
		output string
	}{
		{"empty", "", ""},
		{"terminal only", "#", ""},
		{"pauses only", "   #", ""},
		{"backspace on empty", "*****#", ""},
		{"single letter", "33#", "E"},
		{"switch then backspace", "227*#", "B"},
		{"hello", "4433555 555666#", "HELLO"},
		{"turing", "8 88777444666*664#", "TURING"},
		{"wrap three letters", "2222#", "A"},
		{"wrap four letters", "77777#", "P"},
		{"pause splits runs", "22 22#", "BB"},
		{"pause splits single presses", "2 2#", "AA"},
		{"backspace mid run", "22*2#", "A"},
		{"no terminal drops pending", "4433", "H"},
		{"no terminal nothing committed", "222", ""},
		{"after terminal ignored", "2#33", "A"},
		{"unknown characters ignored", "2a2!#", "B"},
		{"unmapped keys", "0 1 2#", "A"},
		{"unmapped switch", "2012#", "AA"},
		{"non ascii ignored", "2é2#", "B"},
		{"backspace then more", "44*44#", "H"},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			assert.Equal(t, sample.output, Decode(sample.input))
		})
	}
}

func TestDecodeCycling(t *testing.T) {
	for d := byte('2'); d <= '9'; d++ {
		letters, ok := DefaultKeymap.Letters(d)
		require.True(t, ok)

		for n := 1; n <= 3*len(letters)+1; n++ {
			input := strings.Repeat(string(d), n) + "#"
			expected := string(letters[(n-1)%len(letters)])
			assert.Equal(t, expected, Decode(input), "input %q", input)
		}
	}
}

func TestKeymapLetters(t *testing.T) {
	for _, d := range []byte{'0', '1', 'x', '#'} {
		_, ok := DefaultKeymap.Letters(d)
		assert.False(t, ok, "key %q", d)
	}

	letters, ok := DefaultKeymap.Letters('7')
	assert.True(t, ok)
	assert.Equal(t, "PQRS", letters)
}

func TestDecoderKeymap(t *testing.T) {
	m := Keymap{2: "XY"}
	d := NewWithKeymap(m)
	assert.Equal(t, "X", d.Decode("222#"))
	assert.Equal(t, "", d.Decode("3#"))

	m[2] = "ZZ"
	assert.Equal(t, "XY", d.Keymap()[2])
}

func TestDecodeConcurrent(t *testing.T) {
	d := New()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "HELLO", d.Decode("4433555 555666#"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkDecode(b *testing.B) {
	input := strings.Repeat("4433555 555666*", 64) + "#"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Decode(input)
	}
}
