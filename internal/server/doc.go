// Package server implements the MCP (Model Context Protocol) server for
// picture transformations.
//
// This package provides a JSON-RPC 2.0 server that exposes the picture
// package's operations as MCP tools, so that MCP-compatible clients can load,
// transform and compose pictures on the local filesystem.
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
//   - picture_load: Load a picture and get metadata
//   - picture_transform: Apply named operations (negate, grayscale, ...)
//   - picture_sample_color: Get the color at a row and column
//   - picture_copy: Clipped copy of one picture into another
//   - picture_crop_and_copy: Copy an inclusive region between pictures
//   - picture_collage: Compose the twelve-tile collage
//
// Tools that produce a picture either save it to output_path or, when no
// path is given, return it inline as base64 PNG.
//
// # Image Caching
//
// Decoded files are cached by path for the lifetime of the server process.
// Every tool call works on its own copy, so transforms never leak between
// calls. Saving to a path evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
