package mcp

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/edutrack/docgen"
)

// RegisterDefaultTools adds the built-in document tools to the server.
func RegisterDefaultTools(s *Server) {
	gen, err := docgen.New()
	if err != nil {
		// Only reachable with a broken default geometry.
		panic(err)
	}
	s.AddTool(generateDocumentTool(gen))
	s.AddTool(listDocumentTypesTool(gen))
	s.AddTool(renderPagePNGTool(gen))
}

func generateDocumentTool(gen *docgen.Generator) Tool {
	return Tool{
		Name: "generate_document",
		Description: "Generate a school administrative document (certificate, enrollment form, " +
			"payment attestation, class roster, attendance sheet, notice) as a PDF. " +
			"Unknown document types produce a placeholder document instead of failing. " +
			"Returns the PDF as base64 unless outputPath is given.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"documentType": map[string]any{
					"type":        "string",
					"description": "Document type key, e.g. certificat_scolarite, liste_eleves, circulaire",
				},
				"data": map[string]any{
					"type":        "object",
					"description": "Record bag: student, school, students[], academicYear, amount, className, title, content, date",
				},
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"documentType"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			docType, ok := args["documentType"].(string)
			if !ok || docType == "" {
				return ToolResult{}, fmt.Errorf("missing 'documentType' argument")
			}
			data, _ := args["data"].(map[string]any)

			d := gen.Generate(docType, data)
			b, err := gen.ToBytes(d)
			if err != nil {
				return ToolResult{}, fmt.Errorf("exporting PDF: %w", err)
			}

			if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
				if err := os.WriteFile(outputPath, b, 0o644); err != nil {
					return ToolResult{}, fmt.Errorf("writing file: %w", err)
				}
				return ToolResult{
					Content: []ContentBlock{{
						Type: "text",
						Text: fmt.Sprintf("Document created: %s (%d pages, %d bytes)", outputPath, d.PageCount(), len(b)),
					}},
				}, nil
			}

			encoded := base64.StdEncoding.EncodeToString(b)
			return ToolResult{
				Content: []ContentBlock{{
					Type: "text",
					Text: fmt.Sprintf("Document created (%d pages, %d bytes). Base64 data:\n%s", d.PageCount(), len(b), encoded),
				}},
			}, nil
		},
	}
}

func listDocumentTypesTool(gen *docgen.Generator) Tool {
	return Tool{
		Name:        "list_document_types",
		Description: "List the supported school document type keys.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			return ToolResult{
				Content: []ContentBlock{{
					Type: "text",
					Text: strings.Join(gen.Types(), "\n"),
				}},
			}, nil
		},
	}
}

func renderPagePNGTool(gen *docgen.Generator) Tool {
	return Tool{
		Name: "render_page_png",
		Description: "Generate a document and rasterize one of its pages to a PNG preview. " +
			"Returns the image as base64.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"documentType": map[string]any{
					"type":        "string",
					"description": "Document type key",
				},
				"data": map[string]any{
					"type":        "object",
					"description": "Record bag, same shape as generate_document",
				},
				"page": map[string]any{
					"type":        "number",
					"description": "1-based page number (default 1)",
				},
			},
			"required": []string{"documentType"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			docType, ok := args["documentType"].(string)
			if !ok || docType == "" {
				return ToolResult{}, fmt.Errorf("missing 'documentType' argument")
			}
			data, _ := args["data"].(map[string]any)

			page := 1
			if n, ok := args["page"].(float64); ok && n >= 1 {
				page = int(n)
			}

			d := gen.Generate(docType, data)
			b, err := gen.PNG(d, page-1)
			if err != nil {
				return ToolResult{}, fmt.Errorf("rendering page %d: %w", page, err)
			}

			return ToolResult{
				Content: []ContentBlock{{
					Type:     "resource",
					MIMEType: "image/png",
					Data:     base64.StdEncoding.EncodeToString(b),
				}},
			}, nil
		},
	}
}
