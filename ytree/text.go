package ytree

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tarantool/go-ytclient/internal/options"
)

var (
	// ErrUnbalanced is returned when an End event has no matching Begin event.
	ErrUnbalanced = errors.New("unbalanced tree events")
	// ErrUnexpectedItem is returned when an item marker is used outside of its container.
	ErrUnexpectedItem = errors.New("item marker outside of container")
)

type frameKind int

const (
	frameList frameKind = iota + 1
	frameMap
	frameAttributes
)

type frame struct {
	kind  frameKind
	first bool
}

type textOptions struct {
	spaces bool
}

// WithSpaces separates items and keys from values with spaces.
func WithSpaces() options.Option[textOptions] {
	return func(opts *textOptions) {
		opts.spaces = true
	}
}

// TextWriter renders consumer events as YSON text. It is meant for
// diagnostics: the first write error is kept and every later event is dropped.
type TextWriter struct {
	w      io.Writer
	opts   textOptions
	frames []frame
	err    error
}

var _ Consumer = &TextWriter{} //nolint:exhaustruct

// NewTextWriter creates a TextWriter writing into w.
func NewTextWriter(w io.Writer, opts ...options.Option[textOptions]) *TextWriter {
	return &TextWriter{
		w:      w,
		opts:   options.Apply(textOptions{spaces: false}, opts...),
		frames: nil,
		err:    nil,
	}
}

// Err returns the first error that happened while writing.
func (tw *TextWriter) Err() error {
	return tw.err
}

// Finish reports an error if some container is still open.
func (tw *TextWriter) Finish() error {
	if tw.err == nil && len(tw.frames) != 0 {
		tw.err = ErrUnbalanced
	}

	return tw.err
}

func (tw *TextWriter) write(s string) {
	if tw.err != nil {
		return
	}

	_, tw.err = io.WriteString(tw.w, s)
}

func (tw *TextWriter) push(kind frameKind, open string) {
	tw.write(open)
	tw.frames = append(tw.frames, frame{kind: kind, first: true})
}

func (tw *TextWriter) pop(kind frameKind, closing string) {
	if len(tw.frames) == 0 || tw.frames[len(tw.frames)-1].kind != kind {
		if tw.err == nil {
			tw.err = ErrUnbalanced
		}

		return
	}

	tw.frames = tw.frames[:len(tw.frames)-1]
	tw.write(closing)
}

func (tw *TextWriter) item(kinds ...frameKind) bool {
	if len(tw.frames) == 0 {
		if tw.err == nil {
			tw.err = ErrUnexpectedItem
		}

		return false
	}

	top := &tw.frames[len(tw.frames)-1]
	for _, kind := range kinds {
		if top.kind != kind {
			continue
		}

		if !top.first {
			tw.write(tw.separator())
		}

		top.first = false

		return true
	}

	if tw.err == nil {
		tw.err = ErrUnexpectedItem
	}

	return false
}

func (tw *TextWriter) separator() string {
	if tw.opts.spaces {
		return "; "
	}

	return ";"
}

// OnStringScalar implements Consumer.
func (tw *TextWriter) OnStringScalar(value []byte) {
	tw.write(quote(value))
}

// OnInt64Scalar implements Consumer.
func (tw *TextWriter) OnInt64Scalar(value int64) {
	tw.write(strconv.FormatInt(value, 10))
}

// OnUint64Scalar implements Consumer.
func (tw *TextWriter) OnUint64Scalar(value uint64) {
	tw.write(strconv.FormatUint(value, 10) + "u")
}

// OnDoubleScalar implements Consumer.
func (tw *TextWriter) OnDoubleScalar(value float64) {
	tw.write(formatDouble(value))
}

// OnBooleanScalar implements Consumer.
func (tw *TextWriter) OnBooleanScalar(value bool) {
	if value {
		tw.write("%true")
	} else {
		tw.write("%false")
	}
}

// OnEntity implements Consumer.
func (tw *TextWriter) OnEntity() {
	tw.write("#")
}

// OnBeginList implements Consumer.
func (tw *TextWriter) OnBeginList() {
	tw.push(frameList, "[")
}

// OnListItem implements Consumer.
func (tw *TextWriter) OnListItem() {
	tw.item(frameList)
}

// OnEndList implements Consumer.
func (tw *TextWriter) OnEndList() {
	tw.pop(frameList, "]")
}

// OnBeginMap implements Consumer.
func (tw *TextWriter) OnBeginMap() {
	tw.push(frameMap, "{")
}

// OnKeyedItem implements Consumer.
func (tw *TextWriter) OnKeyedItem(key string) {
	if !tw.item(frameMap, frameAttributes) {
		return
	}

	tw.write(quote([]byte(key)))

	if tw.opts.spaces {
		tw.write(" = ")
	} else {
		tw.write("=")
	}
}

// OnEndMap implements Consumer.
func (tw *TextWriter) OnEndMap() {
	tw.pop(frameMap, "}")
}

// OnBeginAttributes implements Consumer.
func (tw *TextWriter) OnBeginAttributes() {
	tw.push(frameAttributes, "<")
}

// OnEndAttributes implements Consumer.
func (tw *TextWriter) OnEndAttributes() {
	tw.pop(frameAttributes, ">")
}

// OnRaw implements Consumer.
func (tw *TextWriter) OnRaw(yson []byte) {
	tw.write(string(yson))
}

func formatDouble(value float64) string {
	switch {
	case math.IsNaN(value):
		return "%nan"
	case math.IsInf(value, 1):
		return "%inf"
	case math.IsInf(value, -1):
		return "%-inf"
	}

	out := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(out, ".e") {
		// Without a dot the text would be read back as an integer.
		out += "."
	}

	return out
}

const hexDigits = "0123456789abcdef"

func quote(value []byte) string {
	var sb strings.Builder

	sb.Grow(len(value) + 2)
	sb.WriteByte('"')

	for _, b := range value {
		switch {
		case b == '"' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\r':
			sb.WriteString(`\r`)
		case b == '\t':
			sb.WriteString(`\t`)
		case b < 0x20 || b >= 0x7f:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0xf])
		default:
			sb.WriteByte(b)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// Render returns the YSON text of value.
func Render(value TreeWriter, opts ...options.Option[textOptions]) (string, error) {
	var buf bytes.Buffer

	writer := NewTextWriter(&buf, opts...)
	value.WriteTree(writer)

	err := writer.Finish()
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
