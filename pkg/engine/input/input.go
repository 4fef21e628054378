package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("interrupted")

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	in       *os.File
	fd       int
	oldState *term.State
}

// NewKeyReader puts the terminal behind in into raw mode. Call Close to restore it.
func NewKeyReader(in *os.File) (*KeyReader, error) {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal to raw mode: %w", err)
	}
	return &KeyReader{in: in, fd: fd, oldState: oldState}, nil
}

// Close restores the terminal to its previous state
func (k *KeyReader) Close() error {
	if k.oldState == nil {
		return nil
	}
	err := term.Restore(k.fd, k.oldState)
	k.oldState = nil
	return err
}

// Next blocks for one key press and returns it as a raw input event
func (k *KeyReader) Next() (RawInput, error) {
	code, err := ReadKey(k.in)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

// readByte reads a single byte
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// ReadKey reads one key press from a raw-mode stream and names it the way bindings do.
// Arrow keys arrive as escape sequences; a bare escape is reported as "escape".
func ReadKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == 0x1b:
		return readEscape(r)
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 >= 'A' && b1 <= 'Z':
		return string(b1 + ('a' - 'A')), nil
	case b1 > 32 && b1 < 127:
		return string(b1), nil
	}
	return "", nil
}

// readEscape decodes the rest of an escape sequence after ESC
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", nil
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	case '1':
		// F5 is ESC [ 1 5 ~
		b4, err := readByte(r)
		if err != nil {
			return "", nil
		}
		b5, _ := readByte(r)
		if b4 == '5' && b5 == '~' {
			return "f5", nil
		}
	case '2':
		// F9 is ESC [ 2 0 ~
		b4, err := readByte(r)
		if err != nil {
			return "", nil
		}
		b5, _ := readByte(r)
		if b4 == '0' && b5 == '~' {
			return "f9", nil
		}
	}
	// Unknown escape sequence - discard it
	return "", nil
}
