// Command docgen-mcp is an MCP (Model Context Protocol) server that exposes
// school document generation to AI assistants.
//
// # Installation
//
//	go install github.com/edutrack/docgen/cmd/docgen-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "docgen": {
//	      "command": "docgen-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_document: Generate a certificate, roster, attestation or notice as PDF
//   - list_document_types: List supported document type keys
//   - render_page_png: Rasterize one page of a document to PNG
//
// # Available Resources
//
//   - docgen://types : Supported document type keys
//   - docgen://titles : Type key to display title map
package main

import (
	"fmt"
	"os"

	"github.com/edutrack/docgen/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "docgen-mcp: %v\n", err)
		os.Exit(1)
	}
}
