package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer defines the contract for rendering gomponents trees, either to
// bytes (for fragments) or straight into an HTTP response.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes.
	RenderComponent(node gomponents.Node) ([]byte, error)

	// RenderPage handles full-page rendering for an Echo context.
	RenderPage(c echo.Context, status int, node gomponents.Node) error
}

// ComponentRenderer is the concrete Renderer used by the server. It also
// implements echo.Renderer so handlers can call c.Render with the
// component passed as the data argument.
type ComponentRenderer struct{}

// NewComponentRenderer creates a new ComponentRenderer.
func NewComponentRenderer() *ComponentRenderer {
	return &ComponentRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *ComponentRenderer) RenderComponent(node gomponents.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("cannot render a nil component")
	}
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *ComponentRenderer) RenderPage(c echo.Context, status int, node gomponents.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	if err := node.Render(c.Response().Writer); err != nil {
		c.Logger().Error("Failed to stream component to response writer:", err)
		return err
	}
	return nil
}

// Render implements the echo.Renderer interface for use with
// c.Render(status, name, component). The name parameter is ignored; the
// component travels in the data parameter.
func (r *ComponentRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	node, ok := data.(gomponents.Node)
	if !ok {
		return fmt.Errorf("unsupported component type %T: component must be a gomponents.Node", data)
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return node.Render(w)
}
