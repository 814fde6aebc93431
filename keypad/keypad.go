// Package keypad decodes old phone keypad presses into text.
//
// Digits 2-9 select letter groups, repeating a digit cycles through its
// group, a space commits the pending presses, '*' erases the last committed
// letter and '#' commits and ends the input. Everything else is ignored.
package keypad

const (
	KeyTerminal  = '#'
	KeyBackspace = '*'
	KeyPause     = ' '
)

// Keymap holds the letters of each digit key, indexed by digit value.
// Keys without letters are empty.
type Keymap [10]string

// DefaultKeymap is the classic phone layout, 0 and 1 carry no letters.
var DefaultKeymap = Keymap{
	2: "ABC",
	3: "DEF",
	4: "GHI",
	5: "JKL",
	6: "MNO",
	7: "PQRS",
	8: "TUV",
	9: "WXYZ",
}

// Letters returns the letter group of digit key d.
func (m Keymap) Letters(d byte) (string, bool) {
	if d < '0' || d > '9' {
		return "", false
	}
	letters := m[d-'0']
	return letters, letters != ""
}

// Decoder is safe for concurrent use, every Decode call owns its state.
type Decoder struct {
	keymap Keymap
}

func New() *Decoder {
	return NewWithKeymap(DefaultKeymap)
}

func NewWithKeymap(m Keymap) *Decoder {
	return &Decoder{keymap: m}
}

func (d *Decoder) Keymap() Keymap { return d.keymap }

// presses is the run of identical digit presses not yet committed.
type presses struct {
	key byte
	n   int
}

func (p *presses) reset() { p.key, p.n = 0, 0 }

// commit translates pending presses into a letter and clears them.
func (d *Decoder) commit(p *presses, out []byte) []byte {
	if p.n == 0 {
		return out
	}
	if letters, ok := d.keymap.Letters(p.key); ok {
		out = append(out, letters[(p.n-1)%len(letters)])
	}
	p.reset()
	return out
}

// Decode never fails. Presses left pending when input ends without
// KeyTerminal are dropped.
func (d *Decoder) Decode(input string) string {
	var (
		out = make([]byte, 0, len(input))
		p   presses
	)

scan:
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == KeyTerminal:
			out = d.commit(&p, out)
			break scan
		case c == KeyBackspace:
			out = d.commit(&p, out)
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case c == KeyPause:
			out = d.commit(&p, out)
		case c >= '0' && c <= '9':
			if p.n > 0 && p.key != c {
				out = d.commit(&p, out)
			}
			p.key = c
			p.n++
		}
	}

	return string(out)
}

var std = New()

// Decode decodes input with DefaultKeymap.
func Decode(input string) string {
	return std.Decode(input)
}
