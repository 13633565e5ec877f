package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Stream is a Console backed by writers. Log and Info go to out, Error goes
// to err. Arguments are rendered the way a browser console renders them: a
// lone argument is printed as is, otherwise a leading string may carry %s, %d, %i, %f, %o, %O and %c directives, and %c
// consumes its style argument without printing anything.
type Stream struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewStream creates a Stream. A nil err routes errors to out.
func NewStream(out, err io.Writer) *Stream {
	if err == nil {
		err = out
	}
	return &Stream{out: out, err: err}
}

func (s *Stream) Log(args ...any) {
	s.write(s.out, args)
}

func (s *Stream) Info(args ...any) {
	s.write(s.out, args)
}

func (s *Stream) Error(args ...any) {
	s.write(s.err, args)
}

func (s *Stream) write(w io.Writer, args []any) {
	line := Format(args...)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(w, line+"\n")
}

// Format renders console arguments into a single line.
func Format(args ...any) string {
	if len(args) == 0 {
		return ""
	}
	if len(args) == 1 {
		return fmt.Sprint(args[0])
	}
	format, ok := args[0].(string)
	if !ok {
		return joinArgs(args)
	}
	rest := args[1:]

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			b.WriteByte(ch)
			continue
		}
		verb := format[i+1]
		if verb == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		if !strings.ContainsRune("sdifoOc", rune(verb)) || len(rest) == 0 {
			b.WriteByte(ch)
			continue
		}
		arg := rest[0]
		rest = rest[1:]
		i++
		switch verb {
		case 'c':
		case 'd', 'i':
			b.WriteString(formatInt(arg))
		default:
			b.WriteString(fmt.Sprint(arg))
		}
	}

	if len(rest) > 0 {
		b.WriteByte(' ')
		b.WriteString(joinArgs(rest))
	}
	return b.String()
}

func formatInt(arg any) string {
	switch v := arg.(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case float32:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprint(arg)
	}
}

func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
