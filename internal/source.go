package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding returns the text encoding with the given name. Recognized names
// are utf8, utf16, utf16le, utf16be, utf32, utf32le, utf32be, latin1, and
// windows1252. The empty string means utf8. Unicode encodings honor a byte
// order mark if one is present.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", "utf8":
		return unicode.UTF8, nil
	case "utf16", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "utf32", "utf32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), nil
	case "utf32be":
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), nil
	case "latin1", "iso88591":
		return charmap.ISO8859_1, nil
	case "windows1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// ReadSource reads all of r and decodes it to UTF-8 from enc, or from UTF-8
// if enc is nil. A UTF-8 or UTF-16 byte order mark overrides enc. Invalid
// input bytes become U+FFFD, which the scanner rejects as unexpected
// characters.
func ReadSource(r io.Reader, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	dec := unicode.BOMOverride(enc.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DoReader reads source code from r using enc, as with ReadSource, and runs
// it.
func (in *Interpreter) DoReader(r io.Reader, enc encoding.Encoding) error {
	src, err := ReadSource(r, enc)
	if err != nil {
		return err
	}
	return in.DoString(src)
}

// ReadFile reads and decodes the source code in the file at path, as with
// ReadSource. Errors opening or reading the file wrap ErrOpen.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()
	src, err := ReadSource(f, enc)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	return src, nil
}

// DoFile runs the source code in the file at path. Errors opening or reading
// the file wrap ErrOpen.
func (in *Interpreter) DoFile(path string, enc encoding.Encoding) error {
	src, err := ReadFile(path, enc)
	if err != nil {
		return err
	}
	return in.DoString(src)
}
