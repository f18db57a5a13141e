package vigenere

import "errors"

var (
	// ErrWrongArgumentCount is returned when the program is not given exactly
	// one keyword, or the keyword is empty.
	ErrWrongArgumentCount = errors.New("Error. Input one keyword please.")
	// ErrInvalidKeywordCharacter is returned when the keyword has a byte that is not an ASCII letter.
	ErrInvalidKeywordCharacter = errors.New("Error. Input only alphabetical characters.")
)

// Keyword is a validated, non-empty sequence of ASCII letters.
type Keyword string

// ParseKeyword validates s as a keyword.
func ParseKeyword(s string) (Keyword, error) {
	if s == "" {
		return "", ErrWrongArgumentCount
	}
	for i := 0; i < len(s); i++ {
		if !checkLetter(s[i]) {
			return "", ErrInvalidKeywordCharacter
		}
	}
	return Keyword(s), nil
}

// shiftAt returns the zero-based alphabet position of the keyword letter at i.
func (k Keyword) shiftAt(i int) int {
	c := k[i]
	if isLower(c) {
		return int(c - 'a')
	}
	return int(c - 'A')
}

// Cursor walks a keyword cyclically, one position per message letter.
type Cursor struct {
	key Keyword
	pos int
}

func NewCursor(key Keyword) *Cursor {
	return &Cursor{key: key}
}

// Next returns the shift for the next message letter and advances the cursor.
func (c *Cursor) Next() int {
	k := c.key.shiftAt(c.pos)
	c.pos = (c.pos + 1) % len(c.key)
	return k
}

// Pos reports the keyword position that the next letter will use.
func (c *Cursor) Pos() int {
	return c.pos
}
