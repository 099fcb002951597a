package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

// Output writes reports to the user. In JSON mode only structured results
// are written, so stdout stays machine readable.
type Output struct {
	w      io.Writer
	json   bool
	title  *color.Color
	warn   *color.Color
	failed *color.Color
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer, jsonMode bool) *Output {
	return &Output{
		w:      w,
		json:   jsonMode,
		title:  color.New(color.FgCyan, color.Bold),
		warn:   color.New(color.FgYellow),
		failed: color.New(color.FgRed),
	}
}

// JSON reports whether the output is in JSON mode.
func (o *Output) JSON() bool { return o.json }

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer { return o.w }

// Banner prints a title between heavy rules.
func (o *Output) Banner(title string) {
	if o.json {
		return
	}
	fmt.Fprintln(o.w, "\n"+heavyRule)
	o.title.Fprintln(o.w, title)
	fmt.Fprintln(o.w, heavyRule)
}

// Section prints a title between light rules.
func (o *Output) Section(title string) {
	if o.json {
		return
	}
	fmt.Fprintln(o.w, "\n"+lightRule)
	o.title.Fprintln(o.w, title)
	fmt.Fprintln(o.w, lightRule)
}

// Println prints plain text.
func (o *Output) Println(a ...interface{}) {
	if o.json {
		return
	}
	fmt.Fprintln(o.w, a...)
}

// Printf prints formatted plain text.
func (o *Output) Printf(format string, a ...interface{}) {
	if o.json {
		return
	}
	fmt.Fprintf(o.w, format, a...)
}

// Warn prints a highlighted warning line.
func (o *Output) Warn(format string, a ...interface{}) {
	if o.json {
		return
	}
	o.warn.Fprintf(o.w, "⚠️ "+format+"\n", a...)
}

// Fail prints a highlighted error line.
func (o *Output) Fail(format string, a ...interface{}) {
	if o.json {
		return
	}
	o.failed.Fprintf(o.w, "❌ "+format+"\n", a...)
}

// Result writes v as indented JSON in JSON mode, otherwise the rendered
// text between heavy rules.
func (o *Output) Result(v interface{}, text string) error {
	if o.json {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(o.w, string(data))
		return err
	}
	fmt.Fprintln(o.w, "\n"+heavyRule)
	fmt.Fprintln(o.w, text)
	fmt.Fprintln(o.w, heavyRule)
	return nil
}
