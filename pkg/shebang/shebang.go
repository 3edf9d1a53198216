// Package shebang rewrites the interpreter line of scripts so the
// interpreter path resolves against a search path instead of a
// hard-coded location.
package shebang

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/vertti/patchshebangs/pkg/searchpath"
)

// PrefixSkip returns a predicate treating interpreters under prefix as
// already canonical, so they are left untouched unless an update is forced.
func PrefixSkip(prefix string) func(string) bool {
	return func(interpreter string) bool {
		return strings.HasPrefix(interpreter, prefix)
	}
}

// Rewriter patches shebang lines in place.
type Rewriter struct {
	Resolver *searchpath.Resolver
	Update   bool              // rewrite even already-canonical interpreters
	Skip     func(string) bool // already-canonical predicate; nil never skips
	FS       FileSystem        // injected for testing
}

// Patch describes an applied rewrite: the shebang line that was replaced
// and the line now in the file.
type Patch struct {
	Old string
	New string
}

// Process classifies the first line of the file at path and, when it is a
// shebang whose interpreter resolves to a different location, rewrites it
// in place. It returns the applied patch, or nil when the file was left
// alone: not a script, already up to date, or skipped as canonical. The
// file's modification time is preserved across a rewrite and all bytes
// outside the first line stay identical.
//
// Plain env forms ("#!/usr/bin/env bash") drop the env wrapper entirely,
// including any trailing arguments; the -S form keeps env, -S and the
// remaining arguments in their original order.
func (rw *Rewriter) Process(path string) (*Patch, error) {
	content, err := rw.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(content)
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if !strings.HasPrefix(line, "#!") {
		return nil, nil // not a script
	}

	original := strings.TrimRightFunc(line, unicode.IsSpace)
	fields := strings.Fields(strings.TrimPrefix(original, "#!"))

	var interpreter string
	var args []string
	if len(fields) > 0 {
		interpreter = fields[0]
		args = fields[1:]
	}

	newLine, err := rw.rebuild(original, interpreter, args)
	if err != nil {
		return nil, err
	}

	if newLine == original {
		return nil, nil
	}
	if !rw.Update && rw.Skip != nil && rw.Skip(interpreter) {
		return nil, nil
	}

	if err := rw.apply(path, text, original, newLine); err != nil {
		return nil, err
	}
	return &Patch{Old: original, New: newLine}, nil
}

// rebuild constructs the replacement shebang line for the parsed
// interpreter and arguments, resolving names through the Resolver.
func (rw *Rewriter) rebuild(original, interpreter string, args []string) (string, error) {
	if filepath.Base(interpreter) != "env" {
		resolved, err := rw.Resolver.Resolve(filepath.Base(interpreter))
		if err != nil {
			return "", err
		}
		return "#!" + strings.Join(append([]string{resolved}, args...), " "), nil
	}

	if len(args) == 0 {
		return "", &InvalidShebangError{Line: original}
	}

	switch first := args[0]; {
	case first == "-S":
		rest := args[1:]
		if len(rest) == 0 {
			return "", &InvalidShebangError{Line: original}
		}
		program, err := rw.Resolver.Resolve(rest[0])
		if err != nil {
			return "", err
		}
		env, err := rw.Resolver.Resolve("env")
		if err != nil {
			return "", err
		}
		parts := append([]string{env, "-S", program}, rest[1:]...)
		return "#!" + strings.Join(parts, " "), nil
	case strings.HasPrefix(first, "-") || strings.Contains(first, "="):
		return "", &UnsupportedShebangError{Line: original}
	default:
		resolved, err := rw.Resolver.Resolve(first)
		if err != nil {
			return "", err
		}
		return "#!" + resolved, nil
	}
}

// apply replaces the first literal occurrence of the original shebang
// string, writes the whole file back, and restores the pre-rewrite mtime.
func (rw *Rewriter) apply(path, content, original, newLine string) error {
	info, err := rw.FS.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	mtime := info.ModTime()

	updated := strings.Replace(content, original, newLine, 1)
	if err := rw.FS.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	// Zero atime leaves it unchanged; only the mtime is restored.
	if err := rw.FS.Chtimes(path, time.Time{}, mtime); err != nil {
		return fmt.Errorf("restoring mtime of %s: %w", path, err)
	}
	return nil
}
