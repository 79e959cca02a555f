// Package session opens model artifacts and exposes their declared
// interface. A Session is an opaque handle; backends register openers under a
// name and the caller picks one through Options.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zerfoo/ortmeta/pkg/registry"
)

var (
	// ErrArtifactNotFound means the path does not name a readable regular file.
	ErrArtifactNotFound = errors.New("model artifact not found")
	// ErrArtifactFormat means the file could not be parsed as a model graph.
	ErrArtifactFormat = errors.New("invalid model artifact")
	// ErrUnknownBackend means no backend is registered under the requested name.
	ErrUnknownBackend = errors.New("unknown session backend")
	// ErrNotSupported means the backend cannot answer the request.
	ErrNotSupported = errors.New("not supported by session backend")
	// ErrClosed is returned by a Session used after Close.
	ErrClosed = errors.New("session closed")
)

// DefaultBackend is used when Options.Backend is empty.
const DefaultBackend = "native"

// Session is a loaded model artifact. Inputs and Outputs return the declared
// interface in declaration order and are stable for the life of the session.
type Session interface {
	Inputs() ([]Descriptor, error)
	Outputs() ([]Descriptor, error)
	Close() error
}

// Introspector is implemented by sessions that expose more than the declared
// interface.
type Introspector interface {
	Metadata() (*Metadata, error)
	// OverridableInitializers returns graph inputs that carry a default value
	// through an initializer.
	OverridableInitializers() ([]Descriptor, error)
}

// Options configures Open.
type Options struct {
	// Backend names a registered backend; empty selects DefaultBackend.
	Backend string
	// LibraryPath is the runtime shared library used by backends that load one.
	LibraryPath string
	Logger      logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Opener creates a Session for the artifact at path. Open has already checked
// that path is a readable regular file.
type Opener func(ctx context.Context, path string, opts Options) (Session, error)

var backends = registry.New[Opener]()

// Register makes a backend available under name.
func Register(name string, open Opener) {
	backends.Register(name, open)
}

// Unregister removes the backend registered under name.
func Unregister(name string) {
	backends.Unregister(name)
}

// Backends lists the registered backend names.
func Backends() []string {
	return backends.Names()
}

// Open loads the artifact at path with the configured backend. The caller
// owns the returned Session and must Close it.
func Open(ctx context.Context, path string, opts Options) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := opts.Backend
	if name == "" {
		name = DefaultBackend
	}
	open, ok := backends.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(backends.Names(), ", "))
	}

	if err := checkReadable(path); err != nil {
		return nil, err
	}

	log := opts.logger().WithFields(logrus.Fields{"backend": name, "path": path})
	log.Debug("opening session")

	s, err := open(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("session opened")
	return s, nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactNotFound, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s: not a regular file", ErrArtifactNotFound, path)
	}
	return nil
}
