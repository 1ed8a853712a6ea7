// Package server implements the MCP (Model Context Protocol) server that
// exposes the kaleidoscope render pipeline to interactive clients.
//
// The UI collaborator — crosshair dragging, sliders, file pickers, canvas
// drawing, download mechanics — lives entirely on the client side. This
// server is the request-in/result-out boundary described by the pipeline's
// concurrency model: it performs no debouncing and no cancellation. Each
// preview result carries a generation id and an echo of its input parameters
// so the client can apply a last-write-wins policy and drop results that no
// longer match the latest requested parameters.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Source image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Color under the crosshair
//
// Kaleidoscope pipeline:
//   - kaleido_preview: All four patterns at preview resolution
//   - kaleido_export: One quadrant at native resolution, lossless PNG
//   - kaleido_guides: Canonical image with cut lines and crosshair overlay
package server
