// Package vigenere enciphers text with a repeating keyword shift.
//
// Only ASCII letters are shifted and only they advance the keyword. Every
// other byte is copied through unchanged.
package vigenere

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const alphabetSize = 26

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// Helper function to check if a byte is an ASCII letter
func checkLetter(c byte) bool {
	return isUpper(c) || isLower(c)
}

// Shift rotates c by k places within its own case. Non-letters are returned as is.
func Shift(c byte, k int) byte {
	var base byte
	switch {
	case isLower(c):
		base = 'a'
	case isUpper(c):
		base = 'A'
	default:
		return c
	}
	k %= alphabetSize
	if k < 0 {
		k += alphabetSize
	}
	return byte((int(c-base)+k)%alphabetSize) + base
}

// Transformer enciphers messages with one keyword.
type Transformer struct {
	key Keyword
}

func NewTransformer(key Keyword) *Transformer {
	return &Transformer{key: key}
}

// Encipher writes the ciphertext of message to w one byte at a time, followed
// by a newline. The keyword restarts at its first letter for every call.
func (t *Transformer) Encipher(w io.Writer, message []byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return t.encipher(bw, message)
	}
	buf := bufio.NewWriter(w)
	if err := t.encipher(buf, message); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write ciphertext: %w", err)
	}
	return nil
}

func (t *Transformer) encipher(bw io.ByteWriter, message []byte) error {
	cur := NewCursor(t.key)
	for _, c := range message {
		if checkLetter(c) {
			c = Shift(c, cur.Next())
		}
		if err := bw.WriteByte(c); err != nil {
			return fmt.Errorf("write ciphertext: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write ciphertext: %w", err)
	}
	return nil
}

// EncipherString validates keyword and returns the ciphertext of message
// without the trailing newline.
func EncipherString(keyword, message string) (string, error) {
	key, err := ParseKeyword(keyword)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(message) + 1)
	if err := NewTransformer(key).Encipher(&sb, []byte(message)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// ReadMessage reads a single line from r with its line terminator removed.
// Input that ends without a newline is returned as is, and an empty reader
// yields an empty message.
func ReadMessage(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read message: %w", err)
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}
