package mcp

import (
	"encoding/json"

	"github.com/edutrack/docgen/template"
)

// RegisterDefaultResources adds the built-in document resources to the
// server. Resources use the docgen:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "docgen://types",
		Name:        "Document Types",
		Description: "The supported school document type keys, one per line.",
		MIMEType:    "text/plain",
		Handler:     handleTypesResource,
	})

	s.AddResource(Resource{
		URI:         "docgen://titles",
		Name:        "Document Titles",
		Description: "JSON map of document type key to display title.",
		MIMEType:    "application/json",
		Handler:     handleTitlesResource,
	})
}

func handleTypesResource(uri string) ([]ResourceContent, error) {
	text := ""
	for _, dt := range template.Types() {
		text += dt + "\n"
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "text/plain",
		Text:     text,
	}}, nil
}

func handleTitlesResource(uri string) ([]ResourceContent, error) {
	titles := make(map[string]string)
	for _, dt := range template.Types() {
		titles[dt] = template.Title(dt)
	}
	b, err := json.MarshalIndent(titles, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(b),
	}}, nil
}
