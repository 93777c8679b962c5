package textio

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encoding represents the detected character encoding of the raw input.
type Encoding int

const (
	// EncodingUnknown indicates no BOM was detected.
	EncodingUnknown Encoding = iota
	// EncodingUTF8 indicates UTF-8 encoding (BOM: 0xEF 0xBB 0xBF).
	EncodingUTF8
	// EncodingUTF16LE indicates UTF-16 Little Endian (BOM: 0xFF 0xFE).
	EncodingUTF16LE
	// EncodingUTF16BE indicates UTF-16 Big Endian (BOM: 0xFE 0xFF).
	EncodingUTF16BE
)

// ErrInvalidUTF8 is returned when invalid UTF-8 sequences are encountered.
type ErrInvalidUTF8 struct {
	Line   int
	Column int
}

func (e *ErrInvalidUTF8) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at line %d, column %d", e.Line, e.Column)
}

// NewReader wraps an io.Reader to provide encoding detection and UTF-8
// validation for expression text. It detects the encoding from the BOM,
// converts non-UTF-8 encodings to UTF-8, and validates the resulting
// UTF-8 stream.
//
// Supported encodings:
//   - UTF-16 LE (BOM: 0xFF 0xFE) - Converted to UTF-8
//   - UTF-16 BE (BOM: 0xFE 0xFF) - Converted to UTF-8
//   - UTF-8 (BOM: 0xEF 0xBB 0xBF) - BOM removed, validated
//   - No BOM - Assumed UTF-8, validated
func NewReader(r io.Reader) io.Reader {
	detectedReader, encoding, err := DetectBOM(r)
	if err != nil {
		return &utf8Reader{reader: r, line: 1, column: 1}
	}

	var finalReader io.Reader
	switch encoding {
	case EncodingUTF16LE:
		finalReader = newUTF16Reader(detectedReader, false)
	case EncodingUTF16BE:
		finalReader = newUTF16Reader(detectedReader, true)
	case EncodingUTF8, EncodingUnknown:
		finalReader = detectedReader
	}

	return &utf8Reader{
		reader:     finalReader,
		line:       1,
		column:     1,
		bomSkipped: true,
	}
}

// ReadAll reads r fully through NewReader and returns the validated,
// BOM-stripped UTF-8 text.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(NewReader(r))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type utf8Reader struct {
	reader     io.Reader
	line       int
	column     int
	bomSkipped bool
	buffer     []byte
	bufPos     int
}

func (u *utf8Reader) Read(p []byte) (n int, err error) {
	if n, ok := u.readBuffered(p); ok {
		return n, nil
	}

	if !u.bomSkipped {
		if n, err := u.handleBOM(p); err != nil || n > 0 {
			return n, err
		}
	}

	n, err = u.reader.Read(p)
	if n > 0 {
		if err := u.validateAndTrack(p[:n]); err != nil {
			return 0, err
		}
	}

	return n, err
}

func (u *utf8Reader) readBuffered(p []byte) (int, bool) {
	if len(u.buffer) > 0 && u.bufPos < len(u.buffer) {
		n := copy(p, u.buffer[u.bufPos:])
		u.bufPos += n
		if u.bufPos >= len(u.buffer) {
			u.buffer = nil
			u.bufPos = 0
		}
		return n, true
	}
	return 0, false
}

func (u *utf8Reader) handleBOM(p []byte) (int, error) {
	u.bomSkipped = true
	bom := make([]byte, 3)
	n, err := io.ReadFull(u.reader, bom)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, err
	}

	if n == 3 && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		return 0, nil
	}

	if n > 0 {
		u.buffer = bom[:n]
		u.bufPos = 0
		copied := copy(p, u.buffer)
		u.bufPos = copied
		if u.bufPos >= len(u.buffer) {
			u.buffer = nil
			u.bufPos = 0
		}
		return copied, nil
	}
	return 0, nil
}

func (u *utf8Reader) validateAndTrack(p []byte) error {
	if !utf8.Valid(p) {
		return u.findInvalidUTF8(p)
	}
	u.updatePosition(p)
	return nil
}

func (u *utf8Reader) findInvalidUTF8(p []byte) error {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return &ErrInvalidUTF8{Line: u.line, Column: u.column + i}
		}
		if p[i] == '\n' {
			u.line++
			u.column = 1
		} else {
			u.column += size
		}
		i += size
	}
	return nil
}

func (u *utf8Reader) updatePosition(p []byte) {
	for i := 0; i < len(p); i++ {
		if p[i] == '\n' {
			u.line++
			u.column = 1
		} else {
			u.column++
		}
	}
}

// ValidateString checks if a string is valid UTF-8.
func ValidateString(s string) bool {
	return utf8.ValidString(s)
}

// ValidateBytes checks if a byte slice is valid UTF-8.
func ValidateBytes(b []byte) bool {
	return utf8.Valid(b)
}

// NormalizeNFC canonically composes s (NFC) so that a comment string
// round-tripped through to_string() compares equal regardless of whether
// combining-mark or precomposed code points were used in the source text.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// DetectBOM reads the first few bytes from r to detect a Byte Order Mark.
// It returns a new reader containing all the original data (with BOM
// consumed if present), the detected encoding, and any error encountered.
func DetectBOM(r io.Reader) (io.Reader, Encoding, error) {
	buf := make([]byte, 3)
	n, err := io.ReadFull(r, buf)

	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, EncodingUnknown, err
	}

	if n == 0 {
		return bytes.NewReader(nil), EncodingUnknown, nil
	}

	var encoding Encoding
	var skipBytes int

	switch {
	case n >= 2 && bytes.Equal(buf[:2], []byte{0xFF, 0xFE}):
		encoding = EncodingUTF16LE
		skipBytes = 2
	case n >= 2 && bytes.Equal(buf[:2], []byte{0xFE, 0xFF}):
		encoding = EncodingUTF16BE
		skipBytes = 2
	case n >= 3 && bytes.Equal(buf[:3], []byte{0xEF, 0xBB, 0xBF}):
		encoding = EncodingUTF8
		skipBytes = 3
	default:
		encoding = EncodingUnknown
		skipBytes = 0
	}

	remaining := buf[skipBytes:n]
	newReader := io.MultiReader(bytes.NewReader(remaining), r)

	return newReader, encoding, nil
}

func newUTF16Reader(r io.Reader, bigEndian bool) io.Reader {
	var endian unicode.Endianness
	if bigEndian {
		endian = unicode.BigEndian
	} else {
		endian = unicode.LittleEndian
	}

	decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	return transform.NewReader(r, decoder)
}
