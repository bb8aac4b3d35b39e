package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// Documented is implemented by errors that carry a short, stable
// description of their error class. The exception formatter includes the
// description in its diagnostic output, the way the errors package types do.
type Documented interface {
	Doc() string
}

// docFallback is rendered when no error in the chain documents itself.
const docFallback = "no description available"

// frame identifies the source location an exception was logged from.
type frame struct {
	file string
	line int
}

// callerFrame captures the file and line skip frames above the caller.
func callerFrame(skip int) frame {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return frame{}
	}
	return frame{file: file, line: line}
}

// exceptionMessage appends the bracketed diagnostic detail for err to msg.
func exceptionMessage(msg string, err error, at frame) string {
	return fmt.Sprintf("%s [%s]", msg, describeException(err, at))
}

// describeException renders a single-line diagnostic for an error:
//
//	Exception in <dir/file.go>:<line> - <TypeName> - <error text> - <description>
//
// The source file is shown as parent-folder/filename when it lies under
// the project root, and as the raw path otherwise. Formatting must never
// become a source of crashes, so every derivation step degrades silently.
func describeException(err error, at frame) (detail string) {
	defer func() {
		if r := recover(); r != nil {
			detail = fmt.Sprintf("Exception in %s:%d - unknown - %v - %s",
				at.file, at.line, r, docFallback)
		}
	}()

	text := "no error"
	typeName := "nil"
	doc := docFallback
	if err != nil {
		text = err.Error()
		typeName = shortTypeName(err)
		if d := docOf(err); d != "" {
			doc = d
		}
	}

	return fmt.Sprintf("Exception in %s:%d - %s - %s - %s",
		relativizePath(at.file), at.line, typeName, text, doc)
}

// shortTypeName returns the error's type name without pointer or package
// qualification, e.g. "*errors.ResourceError" becomes "ResourceError".
func shortTypeName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	// Anonymous type; fall back to the printed form minus punctuation.
	return strings.TrimLeft(fmt.Sprintf("%T", err), "*")
}

// docOf walks the error chain looking for a documented error.
func docOf(err error) string {
	for err != nil {
		if d, ok := err.(Documented); ok {
			return d.Doc()
		}
		err = unwrapOne(err)
	}
	return ""
}

func unwrapOne(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

// relativizePath renders a source path as parent-folder/filename when it
// resides under the project root (the process working directory), and
// returns it untouched otherwise. Any failure falls back to the raw path.
func relativizePath(path string) string {
	if path == "" {
		return "???"
	}
	root, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	parent := filepath.Base(filepath.Dir(path))
	return parent + "/" + filepath.Base(path)
}
