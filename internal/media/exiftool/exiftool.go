// Package exiftool wraps the exiftool binary for reading and writing embedded
// capture-time tags.
package exiftool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// DateFormat is passed to exiftool's -d flag so read-back values parse with
// a fixed layout regardless of the tag's native representation.
const DateFormat = "%Y-%m-%dT%H:%M:%S%z"

// Result holds the tag values exiftool reported for a single file.
type Result struct {
	tags map[string]string
	raw  []byte
}

// Tag returns the value for the named tag, without its group prefix.
func (r Result) Tag(name string) (string, bool) {
	value, ok := r.tags[name]
	return value, ok
}

// RawJSON returns the raw exiftool JSON payload.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

// Read executes exiftool against the provided path and decodes the requested
// tags from its JSON output.
func Read(ctx context.Context, binary string, path string, tags ...string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("exiftool read: empty path")
	}

	args := []string{"-json", "-d", DateFormat}
	for _, tag := range tags {
		args = append(args, "-"+tag)
	}
	args = append(args, "--", path)

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("exiftool read: %w: %s", err, commandDetail(err))
	}

	result, err := parseOutput(output)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// Write applies the given tag assignments to path in place. Assignment keys
// are sorted so the generated command line is deterministic.
func Write(ctx context.Context, binary string, path string, assignments map[string]string) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("exiftool write: empty path")
	}
	if len(assignments) == 0 {
		return nil
	}

	tags := make([]string, 0, len(assignments))
	for tag := range assignments {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	args := []string{"-overwrite_original", "-P"}
	for _, tag := range tags {
		args = append(args, fmt.Sprintf("-%s=%s", tag, assignments[tag]))
	}
	args = append(args, "--", path)

	cmd := exec.CommandContext(ctx, binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("exiftool write: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// parseOutput decodes exiftool's JSON array and flattens the first object's
// values to strings. Numeric values are preserved verbatim.
func parseOutput(output []byte) (Result, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(output, &objects); err != nil {
		return Result{}, fmt.Errorf("exiftool parse: %w", err)
	}
	if len(objects) == 0 {
		return Result{}, errors.New("exiftool parse: empty result")
	}

	tags := make(map[string]string, len(objects[0]))
	for key, value := range objects[0] {
		var asString string
		if err := json.Unmarshal(value, &asString); err != nil {
			asString = strings.TrimSpace(string(value))
		}
		tags[stripGroup(key)] = asString
	}
	return Result{tags: tags, raw: append([]byte(nil), output...)}, nil
}

// stripGroup removes an exiftool group prefix such as "QuickTime:" from a
// tag key.
func stripGroup(key string) string {
	if idx := strings.LastIndex(key, ":"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

func commandDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}
