package server

import (
	"strings"

	"github.com/ironsheep/picturelab/internal/picture"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

var outputPathProperty = pathProperty("Optional path to save the result (.png, .jpg, .jpeg, .bmp). If omitted, the result is returned as base64 PNG.")

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "picture_load",
			Description: "Load a picture file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "picture_transform",
			Description: "Apply a sequence of pixel operations to a picture. Operations run in order; " +
				"edge_detection accepts a distance as edge_detection:<n> (default 15).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"operations": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Operations to apply: " + strings.Join(picture.OperationNames(), ", "),
					},
					"output_path": outputPathProperty,
				},
				"required": []string{"path", "operations"},
			},
		},
		{
			Name:        "picture_sample_color",
			Description: "Get the exact color of the pixel at a row and column.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"row":  intProperty("Row (0-based, from top)"),
					"col":  intProperty("Column (0-based, from left)"),
				},
				"required": []string{"path", "row", "col"},
			},
		},
		{
			Name:        "picture_copy",
			Description: "Copy one picture into another at a row/column offset. The copy is clipped to both pictures.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty("Absolute path to the destination picture"),
					"from_path":   pathProperty("Absolute path to the picture to copy from"),
					"start_row":   intProperty("Destination row of the copied picture's top edge"),
					"start_col":   intProperty("Destination column of the copied picture's left edge"),
					"output_path": outputPathProperty,
				},
				"required": []string{"path", "from_path", "start_row", "start_col"},
			},
		},
		{
			Name:        "picture_crop_and_copy",
			Description: "Copy an inclusive rectangular region of a source picture into a destination picture. Fails if the region does not fit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":             pathProperty("Absolute path to the destination picture"),
					"source_path":      pathProperty("Absolute path to the source picture"),
					"start_source_row": intProperty("First source row (inclusive)"),
					"end_source_row":   intProperty("Last source row (inclusive)"),
					"start_source_col": intProperty("First source column (inclusive)"),
					"end_source_col":   intProperty("Last source column (inclusive)"),
					"start_dest_row":   intProperty("Destination row of the region's top edge"),
					"start_dest_col":   intProperty("Destination column of the region's left edge"),
					"output_path":      outputPathProperty,
				},
				"required": []string{"path", "source_path", "start_source_row", "end_source_row",
					"start_source_col", "end_source_col", "start_dest_row", "start_dest_col"},
			},
		},
		{
			Name:        "picture_collage",
			Description: "Compose twelve transformed variants of a base picture into a 1620x1700 collage.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_path": pathProperty("Absolute path to the base picture"),
					"fit": map[string]interface{}{
						"type":        "boolean",
						"description": "Shrink the base picture to fit one collage cell. Default false",
						"default":     false,
					},
					"output_path": outputPathProperty,
				},
				"required": []string{"base_path"},
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
