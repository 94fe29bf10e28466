// Package responseformat writes handler results as JSON or, on request, MessagePack.
package responseformat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// FormatParam is the query parameter selecting the encoding
	FormatParam = "format"
	// FormatMsgPack selects MessagePack; any other value yields JSON
	FormatMsgPack = "msgpack"

	ContentTypeMsgPack = "application/x-msgpack"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Write renders data with the given status. JSON is the default format.
func (f *Formatter) Write(c *gin.Context, status int, data any) {
	if c.Query(FormatParam) == FormatMsgPack {
		c.Render(status, MsgPack{Data: data})
		return
	}
	c.JSON(status, data)
}

// MsgPack is a gin renderer that reuses json struct tags
type MsgPack struct {
	Data any
}

// Render implements render.Render
func (r MsgPack) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	return encoder.Encode(r.Data)
}

// WriteContentType implements render.Render
func (r MsgPack) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{ContentTypeMsgPack}
	}
}
