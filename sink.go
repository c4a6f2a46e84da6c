package jsoncodec

import (
	"bytes"
	"errors"
)

// errLimitExceeded aborts a bounded encode. It never escapes the package.
var errLimitExceeded = errors.New("length limit exceeded")

// unbounded disables the sink limit.
const unbounded = -1

// sink accumulates encoded output and refuses any write that would take it
// past limit bytes.
type sink struct {
	buf   []byte
	limit int
}

func newSink(limit int) *sink {
	s := &sink{limit: limit}
	if limit > 0 {
		s.buf = make([]byte, 0, min(limit, 4096))
	}
	return s
}

func (s *sink) write(p []byte) error {
	if s.limit != unbounded && len(s.buf)+len(p) > s.limit {
		return errLimitExceeded
	}
	s.buf = append(s.buf, p...)
	return nil
}

func (s *sink) writeString(str string) error {
	if s.limit != unbounded && len(s.buf)+len(str) > s.limit {
		return errLimitExceeded
	}
	s.buf = append(s.buf, str...)
	return nil
}

func (s *sink) writeByte(c byte) error {
	if s.limit != unbounded && len(s.buf)+1 > s.limit {
		return errLimitExceeded
	}
	s.buf = append(s.buf, c)
	return nil
}

// writeIndented writes p, inserting prefix after every newline. Engine output
// never holds a raw newline inside a string, so every newline is structural.
func (s *sink) writeIndented(p []byte, prefix string) error {
	if prefix == "" {
		return s.write(p)
	}
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			return s.write(p)
		}
		if err := s.write(p[:i+1]); err != nil {
			return err
		}
		if err := s.writeString(prefix); err != nil {
			return err
		}
		p = p[i+1:]
	}
}

// bytes returns the accumulated output.
func (s *sink) bytes() []byte {
	return s.buf
}
