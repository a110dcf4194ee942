package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-ascii/internal/convert"
	"github.com/ironsheep/image-ascii/internal/density"
	"github.com/ironsheep/image-ascii/internal/geometry"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_to_ascii").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the named tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Conversion
	case "image_to_ascii":
		return s.handleImageToASCII(args)
	case "density_presets":
		return handleDensityPresets()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Conversion Handlers ===

type imageToASCIIArgs struct {
	Path       string  `json:"path"`
	Size       int     `json:"size"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Density    string  `json:"density"`
	Scale      float64 `json:"scale"`
	FlipX      bool    `json:"flip_x"`
	FlipY      bool    `json:"flip_y"`
	Invert     bool    `json:"invert"`
	Border     bool    `json:"border"`
	Background bool    `json:"background"`
	Threads    int     `json:"threads"`
	Format     string  `json:"format"`
	Region     string  `json:"region"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Gamma      float64 `json:"gamma"`
}

// ASCIIResult is returned by the image_to_ascii tool.
type ASCIIResult struct {
	// PlainText is always present: rows of characters, each ending in "\n".
	PlainText string `json:"plain_text"`

	// ANSIText is the truecolor rendering, set when format is "ansi".
	ANSIText string `json:"ansi_text,omitempty"`

	// HTML is a standalone page, set when format is "html".
	HTML string `json:"html,omitempty"`

	Geometry  geometry.Geometry `json:"geometry"`
	Density   string            `json:"density"`
	BytesHint int               `json:"bytes_hint"`
}

func (a imageToASCIIArgs) options() (convert.Options, error) {
	opts := convert.Options{
		Size:           a.Size,
		Width:          a.Width,
		Height:         a.Height,
		Density:        a.Density,
		Scale:          a.Scale,
		FlipHorizontal: a.FlipX,
		FlipVertical:   a.FlipY,
		Invert:         a.Invert,
		Border:         a.Border,
		Background:     a.Background,
		Threads:        a.Threads,
		NoColor:        a.Format != "ansi",
		Adjustments: imaging.Adjustments{
			Brightness: a.Brightness,
			Contrast:   a.Contrast,
			Gamma:      a.Gamma,
		},
	}
	if opts.Size == 0 && opts.Width == 0 && opts.Height == 0 {
		opts.Size = geometry.DefaultMinSize
	}
	if opts.Threads == 0 {
		opts.Threads = 4
	}
	if a.Region != "" {
		region, err := imaging.ParseRegion(a.Region)
		if err != nil {
			return opts, err
		}
		opts.Region = region
	}
	return opts, nil
}

func (s *Server) handleImageToASCII(args json.RawMessage) (interface{}, error) {
	var a imageToASCIIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	switch a.Format {
	case "":
		a.Format = "plain"
	case "plain", "ansi", "html":
	default:
		return nil, fmt.Errorf("unknown format %q: use plain, ansi or html", a.Format)
	}

	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := s.converter.Convert(img, opts)
	if err != nil {
		return nil, err
	}

	out := &ASCIIResult{
		PlainText: res.Plain,
		Geometry:  res.Geometry,
		Density:   res.Density,
		BytesHint: res.BytesHint,
	}
	switch a.Format {
	case "ansi":
		out.ANSIText = res.Color
	case "html":
		out.HTML = res.HTML(a.Background)
	}
	return out, nil
}

// PresetInfo describes one built-in density table.
type PresetInfo struct {
	Name       string `json:"name"`
	Characters string `json:"characters"`
	Length     int    `json:"length"`
}

// PresetsResult is returned by the density_presets tool.
type PresetsResult struct {
	Presets []PresetInfo `json:"presets"`
	Default string       `json:"default"`
}

func handleDensityPresets() (interface{}, error) {
	out := &PresetsResult{Default: density.Short.String()}
	for _, p := range density.Presets() {
		table, err := density.New(p.Chars())
		if err != nil {
			return nil, err
		}
		out.Presets = append(out.Presets, PresetInfo{
			Name:       p.String(),
			Characters: p.Chars(),
			Length:     table.Len(),
		})
	}
	return out, nil
}
