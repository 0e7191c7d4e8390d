// Result formatting for batch output.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/richinex/substrseq/substr"
)

// resultWriter writes one line per query result.
type resultWriter interface {
	write(index int, res Result) error
}

func newResultWriter(format string, w io.Writer) (resultWriter, error) {
	switch format {
	case "", "text":
		return textWriter{w: w}, nil
	case "json":
		return jsonWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

type textWriter struct {
	w io.Writer
}

func (t textWriter) write(_ int, res Result) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(t.w, "error: %s\n", errorKind(res.Err))
		return err
	}
	_, err := fmt.Fprintf(t.w, "%c\n", res.Char)
	return err
}

type jsonWriter struct {
	w io.Writer
}

func (j jsonWriter) write(index int, res Result) error {
	line, err := encodeResult(index, res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(j.w, "%s\n", line)
	return err
}

// encodeResult builds {"index":..,"word_len":..,"k":..,"char"|"error":..}.
func encodeResult(index int, res Result) (string, error) {
	var err error
	line := "{}"
	set := func(path string, value interface{}) {
		if err == nil {
			line, err = sjson.Set(line, path, value)
		}
	}

	set("index", index)
	set("word_len", len(res.Query.Word))
	set("k", res.Query.K)
	if res.Err != nil {
		set("error", errorKind(res.Err))
		set("message", res.Err.Error())
	} else {
		set("char", string(res.Char))
		set("cached", res.Cached)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode result %d: %w", index, err)
	}
	return line, nil
}

// errorKind tags err for output, extending substr.Kind with CLI errors.
func errorKind(err error) string {
	if errors.Is(err, ErrWordTooLong) {
		return "word_too_long"
	}
	return substr.Kind(err)
}
