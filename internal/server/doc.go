// Package server exposes the text-art converter as an MCP (Model Context
// Protocol) server.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image and get its metadata
//   - image_dimensions: Get width and height
//   - image_to_ascii: Convert an image to plain, ANSI or HTML text art
//   - density_presets: List the built-in density tables
//
// Images are cached by path for the lifetime of the process. There is no
// terminal behind the protocol, so image_to_ascii defaults to 80 columns.
//
// Tool failures come back as JSON-RPC errors with code -32000 and the Go
// error string as data.
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
