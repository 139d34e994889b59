package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/picturelab/internal/imaging"
	"github.com/ironsheep/picturelab/internal/picture"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "picture_load", "picture_transform").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errMissingArgument is returned when a required tool argument is empty.
var errMissingArgument = errors.New("missing required argument")

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
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
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
	case "picture_load":
		return s.handlePictureLoad(args)
	case "picture_transform":
		return s.handlePictureTransform(args)
	case "picture_sample_color":
		return s.handlePictureSampleColor(args)
	case "picture_copy":
		return s.handlePictureCopy(args)
	case "picture_crop_and_copy":
		return s.handlePictureCropAndCopy(args)
	case "picture_collage":
		return s.handlePictureCollage(args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// PictureResult describes a picture produced by a tool. Exactly one of
// OutputPath and Image is set.
type PictureResult struct {
	Width      int                     `json:"width"`
	Height     int                     `json:"height"`
	Operations []string                `json:"operations,omitempty"`
	OutputPath string                  `json:"output_path,omitempty"`
	Image      *imaging.EncodedPicture `json:"image,omitempty"`
}

// finish saves p to outputPath, or encodes it inline when outputPath is empty.
func (s *Server) finish(p *picture.Picture, outputPath string, ops []string) (*PictureResult, error) {
	result := &PictureResult{
		Width:      p.Width(),
		Height:     p.Height(),
		Operations: ops,
	}
	if outputPath != "" {
		if err := s.store.Save(p, outputPath); err != nil {
			return nil, err
		}
		result.OutputPath = outputPath
		return result, nil
	}

	encoded, err := imaging.EncodePNG(p)
	if err != nil {
		return nil, err
	}
	result.Image = encoded
	return result, nil
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", errMissingArgument, name)
	}
	return nil
}

// === Picture Handlers ===

type pictureLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handlePictureLoad(args json.RawMessage) (interface{}, error) {
	var a pictureLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	return s.store.Info(a.Path)
}

type pictureTransformArgs struct {
	Path       string   `json:"path"`
	Operations []string `json:"operations"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handlePictureTransform(args json.RawMessage) (interface{}, error) {
	var a pictureTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	p, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(a.Operations...); err != nil {
		return nil, err
	}
	return s.finish(p, a.OutputPath, a.Operations)
}

type pictureSampleColorArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handlePictureSampleColor(args json.RawMessage) (interface{}, error) {
	var a pictureSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	p, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(p, a.Row, a.Col)
}

type pictureCopyArgs struct {
	Path       string `json:"path"`
	FromPath   string `json:"from_path"`
	StartRow   int    `json:"start_row"`
	StartCol   int    `json:"start_col"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureCopy(args json.RawMessage) (interface{}, error) {
	var a pictureCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if err := required("from_path", a.FromPath); err != nil {
		return nil, err
	}
	dst, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.store.Load(a.FromPath)
	if err != nil {
		return nil, err
	}
	if err := dst.Copy(src, a.StartRow, a.StartCol); err != nil {
		return nil, err
	}
	return s.finish(dst, a.OutputPath, nil)
}

type pictureCropAndCopyArgs struct {
	Path           string `json:"path"`
	SourcePath     string `json:"source_path"`
	StartSourceRow int    `json:"start_source_row"`
	EndSourceRow   int    `json:"end_source_row"`
	StartSourceCol int    `json:"start_source_col"`
	EndSourceCol   int    `json:"end_source_col"`
	StartDestRow   int    `json:"start_dest_row"`
	StartDestCol   int    `json:"start_dest_col"`
	OutputPath     string `json:"output_path"`
}

func (s *Server) handlePictureCropAndCopy(args json.RawMessage) (interface{}, error) {
	var a pictureCropAndCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("path", a.Path); err != nil {
		return nil, err
	}
	if err := required("source_path", a.SourcePath); err != nil {
		return nil, err
	}
	dst, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.store.Load(a.SourcePath)
	if err != nil {
		return nil, err
	}
	if err := dst.CropAndCopyRegion(src, a.StartSourceRow, a.EndSourceRow,
		a.StartSourceCol, a.EndSourceCol, a.StartDestRow, a.StartDestCol); err != nil {
		return nil, err
	}
	return s.finish(dst, a.OutputPath, nil)
}

type pictureCollageArgs struct {
	BasePath   string `json:"base_path"`
	Fit        bool   `json:"fit"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePictureCollage(args json.RawMessage) (interface{}, error) {
	var a pictureCollageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := required("base_path", a.BasePath); err != nil {
		return nil, err
	}
	canvas, err := picture.Collage(s.store, a.BasePath, picture.CollageOptions{Fit: a.Fit, Debug: s.debug})
	if err != nil {
		return nil, err
	}
	return s.finish(canvas, a.OutputPath, nil)
}
