package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// viewProperties are the shared input-schema properties for tools that
// render a view of the source image.
func viewProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the source image file",
		},
		"mid_x": map[string]interface{}{
			"type":        "number",
			"description": "Midpoint X, normalized 0-1 (default 0.5)",
			"default":     0.5,
		},
		"mid_y": map[string]interface{}{
			"type":        "number",
			"description": "Midpoint Y, normalized 0-1 (default 0.5)",
			"default":     0.5,
		},
		"rotation_deg": map[string]interface{}{
			"type":        "number",
			"description": "Rotation in degrees, counter-clockwise positive (default 0)",
			"default":     0,
		},
		"zoom": map[string]interface{}{
			"type":        "number",
			"description": "Zoom factor, 1.0 = none, >1 magnifies (default 1.0)",
			"default":     1.0,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Source image information
		{
			Name:        "image_load",
			Description: "Load a source image file and return its dimensions, format, and alpha information.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel coordinate, for crosshair feedback while placing the midpoint.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Kaleidoscope pipeline
		{
			Name:        "kaleido_preview",
			Description: "Render all four mirror patterns at preview resolution (longer side capped at 1024). Returns base64 PNGs in fixed order top-left, top-right, bottom-left, bottom-right, plus a generation id for discarding stale results.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": viewProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "kaleido_export",
			Description: "Render one quadrant's mirror pattern at native resolution and return it as a lossless base64 PNG with a suggested filename.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": func() map[string]interface{} {
					p := viewProperties()
					p["quadrant"] = map[string]interface{}{
						"type":        "integer",
						"enum":        []int{0, 1, 2, 3},
						"description": "Quadrant index: 0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right",
					}
					return p
				}(),
				"required": []string{"path", "quadrant"},
			},
		},
		{
			Name:        "kaleido_guides",
			Description: "Render the preview-resolution canonical image with the quadrant cut lines and midpoint crosshair drawn in.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": viewProperties(),
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
