// Package worker hosts the validator behind a request/response message
// boundary: one JSON object per line in, one per line out. It is the
// embedding surface for processes that drive validation from another runtime
// and only want to exchange strings.
package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/yaduha/go-langcheck/pkg/langpack"
	"github.com/yaduha/go-langcheck/pkg/validation"
)

// maxRequestBytes bounds a single request line.
const maxRequestBytes = 1 << 20

// Request asks for one package validation. ID correlates the response; when
// the caller leaves it empty the host assigns one.
type Request struct {
	ID       string `json:"id"`
	RepoPath string `json:"repo_path"`
}

// Response carries the raw result record for the request with the same ID.
type Response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
}

// Host reads requests from a stream and answers each with a validation
// result. Requests are handled strictly one at a time, in order; every
// request is independent of the ones before it.
type Host struct {
	loader langpack.Loader
	in     io.Reader
	out    io.Writer
}

// NewHost wires a loader to a request stream and a response stream.
func NewHost(loader langpack.Loader, in io.Reader, out io.Writer) *Host {
	return &Host{loader: loader, in: in, out: out}
}

// Serve processes requests until the input stream ends or ctx is done.
// Malformed request lines are answered with a failure response rather than
// terminating the loop; only stream-level failures end it with an error.
func (h *Host) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	encoder := json.NewEncoder(h.out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := encoder.Encode(h.handle(ctx, line)); err != nil {
			return fmt.Errorf("worker: write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("worker: read request: %w", err)
	}
	return ctx.Err()
}

// Handle serves a single request, the programmatic equivalent of one Serve
// iteration.
func (h *Host) Handle(ctx context.Context, req Request) Response {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return Response{
		ID:     req.ID,
		Result: json.RawMessage(validation.ValidateJSON(ctx, h.loader, req.RepoPath)),
	}
}

func (h *Host) handle(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		result, _ := json.Marshal(validation.Result{
			Valid:     false,
			Error:     fmt.Sprintf("worker: decode request: %v", err),
			ErrorType: "RequestError",
		})
		return Response{ID: uuid.NewString(), Result: result}
	}
	return h.Handle(ctx, req)
}
