package telnet

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"time"
)

// Telnet command and option bytes (RFC 854, RFC 858).
const (
	IAC  byte = 255
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250
	NOP  byte = 241
	SE   byte = 240

	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
)

const maxLine = 1024

// Conn is a line-oriented Telnet connection. Negotiation bytes sent by the
// client are consumed silently; writes translate line endings to CRLF.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps raw. A zero timeout disables that deadline.
//
// Precondition: raw must be a valid, open network connection.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 4096),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Negotiate asks the client to suppress go-ahead.
func (c *Conn) Negotiate() error {
	return c.Write([]byte{IAC, WILL, OptSuppressGoAhead})
}

// ReadLine reads one line of input without its line terminator. Telnet command
// sequences and control characters other than tab are dropped; characters past
// an internal maximum line length are discarded.
//
// Postcondition: Returns the next line, or an error (including io.EOF and timeouts).
func (c *Conn) ReadLine() (string, error) {
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	var line strings.Builder
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}
		switch {
		case b == IAC:
			if err := c.skipCommand(); err != nil {
				return line.String(), err
			}
		case b == '\n':
			return line.String(), nil
		case b == '\r':
			if next, err := c.reader.Peek(1); err == nil && (next[0] == '\n' || next[0] == 0) {
				_, _ = c.reader.ReadByte()
			}
			return line.String(), nil
		case b < 32 && b != '\t', b == 127:
		case line.Len() < maxLine:
			line.WriteByte(b)
		}
	}
}

// skipCommand consumes the remainder of a command sequence after IAC.
func (c *Conn) skipCommand() error {
	cmd, err := c.reader.ReadByte()
	if err != nil {
		return err
	}
	switch cmd {
	case WILL, WONT, DO, DONT:
		_, err = c.reader.ReadByte()
		return err
	case SB:
		prev := byte(0)
		for {
			b, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if prev == IAC && b == SE {
				return nil
			}
			if prev == IAC && b == IAC {
				b = 0
			}
			prev = b
		}
	default:
		return nil
	}
}

// WriteLine sends text followed by CRLF. Embedded newlines become CRLF.
func (c *Conn) WriteLine(text string) error {
	return c.writeString(crlf(text) + "\r\n")
}

// WriteLines sends each line followed by CRLF in a single write.
func (c *Conn) WriteLines(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(crlf(l))
		b.WriteString("\r\n")
	}
	return c.writeString(b.String())
}

// WritePrompt sends prompt without a line terminator.
func (c *Conn) WritePrompt(prompt string) error {
	return c.writeString(prompt)
}

// Write sends raw bytes.
func (c *Conn) Write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	_, err := c.raw.Write(data)
	return err
}

func (c *Conn) writeString(s string) error {
	return c.Write([]byte(s))
}

// Close closes the underlying connection. Blocked reads return an error.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}

func crlf(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}
