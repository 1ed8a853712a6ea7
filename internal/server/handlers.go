package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/google/uuid"

	"github.com/TGALLOWAY1/Refract/internal/kaleido"
	"github.com/TGALLOWAY1/Refract/internal/source"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "kaleido_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
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
	// Source image information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Kaleidoscope pipeline
	case "kaleido_preview":
		return s.handleKaleidoPreview(args)
	case "kaleido_export":
		return s.handleKaleidoExport(args)
	case "kaleido_guides":
		return s.handleKaleidoGuides(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodePNGBase64 encodes an image to base64 PNG for transport.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// === Source Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return source.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return source.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return source.SampleColor(img, a.X, a.Y)
}

// === Kaleidoscope Handlers ===

// viewArgs are the shared parameters describing one view of the source
// image. Midpoint coordinates are pointers so that an explicit 0 (a legal,
// degenerate midpoint) is distinguishable from "not provided" (centered).
type viewArgs struct {
	Path        string   `json:"path"`
	MidX        *float64 `json:"mid_x"`
	MidY        *float64 `json:"mid_y"`
	RotationDeg float64  `json:"rotation_deg"`
	Zoom        float64  `json:"zoom"`
}

func (a *viewArgs) midpoint() kaleido.Midpoint {
	mid := kaleido.Midpoint{X: 0.5, Y: 0.5}
	if a.MidX != nil {
		mid.X = *a.MidX
	}
	if a.MidY != nil {
		mid.Y = *a.MidY
	}
	return mid
}

func (a *viewArgs) transform() kaleido.Transform {
	zoom := a.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return kaleido.Transform{RotationDeg: a.RotationDeg, Zoom: zoom}
}

// PatternResult is one composited preview pattern.
type PatternResult struct {
	Quadrant    string `json:"quadrant"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PreviewResult contains the four preview patterns in canonical quadrant
// order, plus an echo of the parameters that produced them and a unique
// generation id. Clients that fire overlapping preview requests compare the
// echo (or id) against their latest requested parameters and drop stale
// results.
type PreviewResult struct {
	GenerationID string           `json:"generation_id"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	MidX         float64          `json:"mid_x"`
	MidY         float64          `json:"mid_y"`
	RotationDeg  float64          `json:"rotation_deg"`
	Zoom         float64          `json:"zoom"`
	Patterns     [4]PatternResult `json:"patterns"`
}

func (s *Server) handleKaleidoPreview(args json.RawMessage) (interface{}, error) {
	var a viewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	mid := a.midpoint()
	tr := a.transform()
	patterns := kaleido.Preview(img, mid, tr)

	result := &PreviewResult{
		GenerationID: uuid.NewString(),
		Width:        patterns[kaleido.TopLeft].Bounds().Dx(),
		Height:       patterns[kaleido.TopLeft].Bounds().Dy(),
		MidX:         mid.X,
		MidY:         mid.Y,
		RotationDeg:  tr.RotationDeg,
		Zoom:         tr.Zoom,
	}
	for _, q := range kaleido.Quadrants {
		encoded, err := encodePNGBase64(patterns[q])
		if err != nil {
			return nil, fmt.Errorf("quadrant %s: %w", q, err)
		}
		result.Patterns[q] = PatternResult{
			Quadrant:    q.String(),
			ImageBase64: encoded,
			MimeType:    "image/png",
		}
	}
	return result, nil
}

type exportArgs struct {
	viewArgs
	Quadrant int `json:"quadrant"`
}

// ExportResult carries the encoded high-resolution pattern and its suggested
// download filename.
type ExportResult struct {
	Filename    string `json:"filename"`
	Quadrant    string `json:"quadrant"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleKaleidoExport(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	q := kaleido.Quadrant(a.Quadrant)
	result, err := kaleido.Export(img, a.midpoint(), a.transform(), q)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    result.Filename,
		Quadrant:    q.String(),
		Width:       result.Width,
		Height:      result.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(result.Data),
		MimeType:    "image/png",
	}, nil
}

// GuidesResult is a preview-resolution view of the canonical buffer with the
// quadrant cut lines and midpoint crosshair drawn in.
type GuidesResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleKaleidoGuides(args json.RawMessage) (interface{}, error) {
	var a viewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	canonical := kaleido.Preprocess(img, a.transform(), kaleido.TierPreview)
	overlay := kaleido.Guides(canonical, a.midpoint())

	encoded, err := encodePNGBase64(overlay)
	if err != nil {
		return nil, err
	}
	return &GuidesResult{
		Width:       overlay.Bounds().Dx(),
		Height:      overlay.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
