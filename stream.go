// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/go-json-experiment/json"
)

// dataPrefix marks stream lines that carry a JSON-encoded TaskStatus.
// Every other line is discarded.
var dataPrefix = []byte("data:")

// StatusStream is a pull-based iterator over the status events of one task.
//
// The stream owns its decode buffer and the underlying connection; it is for
// a single consumer and is not restartable. Next must not be called
// concurrently.
type StatusStream struct {
	taskID string
	body   io.ReadCloser

	// buf holds the unconsumed tail of the stream. It grows on each read
	// and shrinks only by removing a fully delimited line from its front.
	buf   []byte
	chunk []byte

	// readErr records the input's terminal condition (io.EOF or a
	// transport failure). Once set, the body is never read again.
	readErr error

	done    bool
	closed  bool
	closeMu sync.Mutex
}

func newStatusStream(taskID string, body io.ReadCloser) *StatusStream {
	return &StatusStream{
		taskID: taskID,
		body:   body,
		chunk:  make([]byte, 4096),
	}
}

// StreamTaskStatus opens the event stream for a task. The returned stream
// yields every status event the server pushes, in arrival order, until the
// server closes the connection. Close the stream to release the connection.
func (c *Client) StreamTaskStatus(ctx context.Context, taskID string) (*StatusStream, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}

	body, err := c.tr.stream(ctx, "/stream/"+taskID)
	if err != nil {
		return nil, err
	}
	return newStatusStream(taskID, body), nil
}

// TaskID returns the identifier of the task this stream observes.
func (s *StatusStream) TaskID() string {
	return s.taskID
}

// Next returns the next decoded status event, blocking until one is
// available.
//
// A malformed data line is returned as a *DecodeError for that one demand;
// the stream remains usable and the next call continues after the bad line.
// A transport failure is returned once as a *TransportError, after which the
// stream is exhausted. End of stream is reported as io.EOF; a stream closed
// by Close reports ErrStreamClosed instead.
func (s *StatusStream) Next() (*TaskStatus, error) {
	if s.isClosed() {
		return nil, ErrStreamClosed
	}
	if s.done {
		return nil, io.EOF
	}

	for {
		// Drain fully delimited lines before asking for more input.
		for {
			i := bytes.IndexByte(s.buf, '\n')
			if i < 0 {
				break
			}
			line := s.buf[:i]
			s.buf = s.buf[i+1:]
			if status, err, ok := decodeLine(line); ok {
				return status, err
			}
		}

		if s.readErr != nil {
			s.done = true
			if s.readErr != io.EOF {
				return nil, &TransportError{Op: "read stream", Err: s.readErr}
			}
			// A trailing fragment without a newline is still honored
			// as one final line.
			if len(s.buf) > 0 {
				line := s.buf
				s.buf = nil
				if status, err, ok := decodeLine(line); ok {
					return status, err
				}
			}
			return nil, io.EOF
		}

		n, err := s.body.Read(s.chunk)
		if n > 0 {
			s.buf = append(s.buf, s.chunk[:n]...)
		}
		if err != nil {
			// Bytes delivered alongside the error are processed first.
			s.readErr = err
		}
	}
}

// decodeLine applies the framing protocol to one line. ok is false for
// blank, comment, and unrecognized-prefix lines, which produce no event.
func decodeLine(line []byte) (status *TaskStatus, err error, ok bool) {
	trimmed := bytes.TrimSpace(line)
	payload, found := bytes.CutPrefix(trimmed, dataPrefix)
	if !found {
		return nil, nil, false
	}
	payload = bytes.TrimSpace(payload)

	var st TaskStatus
	if uerr := json.Unmarshal(payload, &st); uerr != nil {
		return nil, &DecodeError{Line: string(trimmed), Err: uerr}, true
	}
	if st.TaskID == "" {
		return nil, &DecodeError{Line: string(trimmed), Err: errMissingField("taskId")}, true
	}
	if st.Status == "" {
		return nil, &DecodeError{Line: string(trimmed), Err: errMissingField("status")}, true
	}
	return &st, nil, true
}

type errMissingField string

func (e errMissingField) Error() string {
	return "missing required field " + string(e)
}

// Close releases the underlying connection. It is idempotent; Next calls
// after Close return ErrStreamClosed.
func (s *StatusStream) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}

func (s *StatusStream) isClosed() bool {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	return s.closed
}

// Collect drains the stream until end of input, returning every decoded
// status. The first decode or transport error stops collection.
func (s *StatusStream) Collect() ([]*TaskStatus, error) {
	var statuses []*TaskStatus
	for {
		status, err := s.Next()
		if err == io.EOF {
			return statuses, nil
		}
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, status)
	}
}
