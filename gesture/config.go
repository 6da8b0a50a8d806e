package gesture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/zoombrush"
)

// DefaultHandleWidth is the resize hit-region thickness in pixels.
const DefaultHandleWidth = 8.0

// Config holds the interaction settings shared by both controllers. Zero
// values are meaningful, so start from DefaultConfig.
type Config struct {
	// HandleWidth is the pixel thickness of brush resize handles.
	HandleWidth float64 `yaml:"handleWidth"`
	// Padding inflates the brush box when testing for a pan drag.
	Padding float64 `yaml:"padding"`
	// Dimension restricts brushing to "x" or "y". Empty means both.
	Dimension string `yaml:"dimension"`
	// ZoomDimension restricts pan and zoom to "x" or "y". Empty means both.
	ZoomDimension string `yaml:"zoomDimension"`

	// MinimumZoomX and MinimumZoomY stop zooming in once the visible
	// window is this narrow. Zero disables the limit.
	MinimumZoomX float64 `yaml:"minimumZoomX"`
	MinimumZoomY float64 `yaml:"minimumZoomY"`

	AllowPan    bool `yaml:"allowPan"`
	AllowZoom   bool `yaml:"allowZoom"`
	AllowDraw   bool `yaml:"allowDraw"`
	AllowDrag   bool `yaml:"allowDrag"`
	AllowResize bool `yaml:"allowResize"`

	brushDim zoombrush.Dimension
	zoomDim  zoombrush.Dimension
}

// DefaultConfig returns a config with every gesture enabled.
func DefaultConfig() Config {
	return Config{
		HandleWidth: DefaultHandleWidth,
		AllowPan:    true,
		AllowZoom:   true,
		AllowDraw:   true,
		AllowDrag:   true,
		AllowResize: true,
	}
}

// ParseConfig reads YAML over DefaultConfig and validates the result. JSON
// input is accepted too.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gesture config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse gesture config: %w", err)
	}
	return cfg, nil
}

// validate checks field ranges and resolves the dimension strings.
func (c *Config) validate() error {
	var err error
	if c.brushDim, err = zoombrush.ParseDimension(c.Dimension); err != nil {
		return fmt.Errorf("dimension: %w", err)
	}
	if c.zoomDim, err = zoombrush.ParseDimension(c.ZoomDimension); err != nil {
		return fmt.Errorf("zoomDimension: %w", err)
	}
	if c.HandleWidth < 0 {
		return fmt.Errorf("handleWidth %v is negative", c.HandleWidth)
	}
	if c.MinimumZoomX < 0 || c.MinimumZoomY < 0 {
		return fmt.Errorf("minimum zoom (%v, %v) is negative", c.MinimumZoomX, c.MinimumZoomY)
	}
	return nil
}

// minimumZoom returns the zoom-in limit for axis.
func (c *Config) minimumZoom(axis zoombrush.Axis) float64 {
	if axis == zoombrush.AxisY {
		return c.MinimumZoomY
	}
	return c.MinimumZoomX
}
