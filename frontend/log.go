package frontend

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
)

// LogContext holds information about an HTTP request/response used for
// access logging.
type LogContext struct {
	Logger     *log.Logger
	Request    *http.Request
	StatusCode int
	Metrics    Metrics

	buffer bytes.Buffer
}

// Log writes an access log entry for the context to the logger.
//
// The log format consists of the following space separated fields:
//
// - remote address
// - host
// - origin
// - request information (method, path and protocol)
// - http status code
// - time to first byte
// - time to last byte
// - bytes outbound
//
// If a field value is unknown a hyphen is used in its place. If a field value
// contains spaces or other special characters it is rendered as a
// double-quoted Go string.
//
// The query string is never logged, as it may carry a caller-supplied API key.
func (ctx *LogContext) Log() {
	if ctx.Logger == nil {
		return
	}

	ctx.write(ctx.Request.RemoteAddr)
	ctx.write(ctx.Request.Host)
	ctx.write(ctx.Request.Header.Get("Origin"))

	ctx.write(
		"%s %s %s",
		ctx.Request.Method,
		ctx.Request.URL.EscapedPath(),
		ctx.Request.Proto,
	)

	if ctx.StatusCode == 0 {
		ctx.write("")
	} else {
		ctx.write("%d", ctx.StatusCode)
	}

	if ctx.Metrics.IsFirstByteSent() {
		ctx.write(
			"f/%sms",
			humanize.FormatFloat("#,###.##", ctx.Metrics.TimeToFirstByte),
		)
	} else {
		ctx.write("")
	}

	if ctx.Metrics.IsLastByteSent() {
		ctx.write(
			"l/%sms",
			humanize.FormatFloat("#,###.##", ctx.Metrics.TimeToLastByte),
		)
		ctx.write(
			"o/%s",
			humanize.FormatFloat("#,###.", float64(ctx.Metrics.BytesOut)),
		)
	} else {
		ctx.write("")
		ctx.write("")
	}

	ctx.Logger.Println(ctx.buffer.String())
	ctx.buffer.Reset()
}

// write appends a field to the buffer, quoting it if it contains whitespace
// or special characters.
func (ctx *LogContext) write(str string, v ...interface{}) {
	if ctx.buffer.Len() != 0 {
		ctx.buffer.WriteRune(' ')
	}

	if len(v) != 0 {
		str = fmt.Sprintf(str, v...)
	}

	if str == "" {
		ctx.buffer.WriteRune('-')
		return
	}

	if strings.ContainsAny(str, " \a\b\f\n\r\t\v\"") {
		ctx.buffer.WriteString(strconv.Quote(str))
	} else {
		ctx.buffer.WriteString(str)
	}
}
