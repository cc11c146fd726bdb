package glbackend

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The first three match a *BuildError by Kind.
var (
	ErrFileRead           = errors.New("shader file not successfully read")
	ErrCompile            = errors.New("shader compilation failed")
	ErrLink               = errors.New("shader program linking failed")
	ErrUnsupportedUniform = errors.New("unsupported uniform value type")
	ErrUniformRange       = errors.New("uniform value out of int32 range")
)

// ErrorKind says which build step failed.
type ErrorKind int

const (
	FileRead ErrorKind = iota + 1
	Compile
	Link
)

func (k ErrorKind) String() string {
	switch k {
	case FileRead:
		return "file read"
	case Compile:
		return "compile"
	case Link:
		return "link"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case FileRead:
		return ErrFileRead
	case Compile:
		return ErrCompile
	case Link:
		return ErrLink
	}
	return nil
}

// BuildError reports the first failure while building a Program.
type BuildError struct {
	Kind  ErrorKind
	Stage Stage  // FileRead and Compile only
	Path  string // FileRead only; Err already names it
	Log   string // driver info log, bounded to infoLogSize-1 bytes
	Err   error  // underlying cause, if any
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case FileRead:
		return fmt.Sprintf("read %s shader: %v", e.Stage, e.Err)
	case Compile:
		return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
	case Link:
		return fmt.Sprintf("link program: %s", e.Log)
	default:
		return fmt.Sprintf("build program: %s", e.Kind)
	}
}

func (e *BuildError) Unwrap() error { return e.Err }

func (e *BuildError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}
