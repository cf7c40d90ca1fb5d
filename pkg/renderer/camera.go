package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig contains all the settings needed to place a camera and
// sample an image. Zero values describe an unusable camera; scenes supply
// their own defaults.
type CameraConfig struct {
	Center          core.Vec3 `json:"center"`          // Eye position
	LookAt          core.Vec3 `json:"lookAt"`          // Point the camera looks at
	Up              core.Vec3 `json:"up"`              // Up hint, need not be orthogonal to the view direction
	Width           int       `json:"width"`           // Image width in pixels
	AspectRatio     float64   `json:"aspectRatio"`     // Width / height
	VFov            float64   `json:"vfov"`            // Vertical field of view in degrees
	DefocusAngle    float64   `json:"defocusAngle"`    // Cone angle in degrees through each pixel, 0 for a pinhole
	FocusDistance   float64   `json:"focusDistance"`   // Distance to the plane of perfect focus
	SamplesPerPixel int       `json:"samplesPerPixel"` // Rays averaged per pixel
	MaxDepth        int       `json:"maxDepth"`        // Maximum number of bounces per ray
	Background      core.Vec3 `json:"background"`      // Radiance returned by rays that escape the scene
}

// Validate reports the first setting that would make rendering impossible
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// ImageHeight returns the image height implied by width and aspect ratio, at least 1
func (c CameraConfig) ImageHeight() int {
	height := int(float64(c.Width) / c.AspectRatio)
	return max(1, height)
}

// Camera generates rays for rendering
type Camera struct {
	config CameraConfig

	imageHeight  int
	pixel00      core.Vec3 // Center of pixel (0, 0), the top-left corner
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera derives the viewport geometry from a configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := config.ImageHeight()

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(imageHeight))

	// Orthonormal basis; w points backwards from the view direction
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges run right along u and down along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns a ray through a random point in pixel (i, j). The ray starts
// on the defocus disk when depth of field is enabled and carries a random
// exposure time in [0, 1).
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.config.Center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), random.Float64())
}

// defocusDiskSample returns a random point on the lens disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.config.Center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
