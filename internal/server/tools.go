package server

import (
	"strings"

	"github.com/ironsheep/image-ascii/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func boolProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": description,
		"default":     false,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Conversion
		{
			Name: "image_to_ascii",
			Description: "Convert an image into text art. Each character cell stands for a tile of pixels; " +
				"brighter tiles pick later characters of the density table. Returns the plain text, " +
				"optionally a truecolor ANSI or HTML rendering, and the tile geometry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of columns, clamped to 80-200. Default 80",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Exact number of columns. Combine with height for an exact grid",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Exact number of rows",
					},
					"density": map[string]interface{}{
						"type":        "string",
						"description": "Preset (short, medium, long) or custom characters ordered dark to light",
						"default":     "short",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Character cell aspect correction. Default 0.43",
						"default":     0.43,
					},
					"flip_x":     boolProperty("Mirror the output horizontally"),
					"flip_y":     boolProperty("Mirror the output vertically"),
					"invert":     boolProperty("Reverse the density table"),
					"border":     boolProperty("Frame the output with a box-drawing border"),
					"background": boolProperty("Color cell backgrounds instead of characters"),
					"threads": map[string]interface{}{
						"type":        "integer",
						"description": "Worker threads used for rendering rows. Default 4",
						"default":     4,
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"plain", "ansi", "html"},
						"description": "Extra rendering to return next to the plain text. Default plain",
						"default":     "plain",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"description": "Optional part of the image to convert: \"x1,y1,x2,y2\" or a named region",
					},
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Brightness change in [-1, 1] applied before conversion",
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Contrast change in [-1, 1] applied before conversion",
					},
					"gamma": map[string]interface{}{
						"type":        "number",
						"description": "Gamma correction applied before conversion",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "density_presets",
			Description: "List the built-in density tables. Named regions accepted by image_to_ascii are: " + regionNames(),
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

func regionNames() string {
	return strings.Join(imaging.Quadrants, ", ")
}
