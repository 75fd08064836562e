package render

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"mc-raytracer/internal/mathutil"
)

// Policy constants of the default pinhole camera.
const (
	DefaultViewportHeight = 2.0
	DefaultFocalLength    = 1.0
	DefaultAspectRatio    = 16.0 / 9.0
	DefaultImageWidth     = 400
	DefaultSamples        = 10
	DefaultMaxDepth       = 50
	DefaultTMin           = 1e-3
)

var (
	// ErrNotInitialized is returned by Render when Initialize has not run.
	ErrNotInitialized = errors.New("render: camera not initialized")

	errBadBasis = errors.New("render: view up is parallel to view direction")
)

// Camera maps the pixel grid to sample rays and drives the render loop.
// The exported fields are set by the caller; Initialize derives the rest.
// After Initialize the camera is read-only and safe to share between workers.
type Camera struct {
	AspectRatio     float64 // used when ImageHeight is 0
	ImageWidth      int
	ImageHeight     int // 0 = derive from ImageWidth and AspectRatio
	SamplesPerPixel int
	MaxDepth        int

	// View. The zero value looks from the origin down -z with a
	// viewport 2 units high at focal length 1.
	LookFrom mathutil.Vec3
	LookAt   mathutil.Vec3
	VUp      mathutil.Vec3
	VFov     float64 // vertical field of view in degrees, 0 = fixed viewport height
	Yaw      float64 // degrees, applied after the look-at basis
	Pitch    float64

	DefocusAngle float64 // aperture cone angle in degrees, 0 = pinhole
	FocusDist    float64 // 0 = distance from LookFrom to LookAt

	ShutterOpen  float64
	ShutterClose float64

	TMin    float64 // self-intersection epsilon for scattered rays
	Mode    Mode
	Seed    int64
	Workers int
	Logger  Logger

	initialized       bool
	height            int
	pixelSamplesScale float64
	center            mathutil.Vec3
	pixel00           mathutil.Vec3
	deltaU            mathutil.Vec3
	deltaV            mathutil.Vec3
	frame             mathutil.Mat3 // columns u, v, w
	defocus           bool
	defocusU          mathutil.Vec3
	defocusV          mathutil.Vec3
}

// NewCamera returns a camera with the default image and sampling settings.
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     DefaultAspectRatio,
		ImageWidth:      DefaultImageWidth,
		SamplesPerPixel: DefaultSamples,
		MaxDepth:        DefaultMaxDepth,
		TMin:            DefaultTMin,
		Mode:            ModeDiffuse,
	}
}

// Initialize computes the viewport geometry. It may be called again after
// the public fields change; derived values never overwrite them.
func (c *Camera) Initialize() error {
	if c.ImageWidth < 1 {
		return fmt.Errorf("render: image width %d must be positive", c.ImageWidth)
	}
	height := c.ImageHeight
	if height <= 0 {
		if !(c.AspectRatio > 0) {
			return fmt.Errorf("render: aspect ratio %v must be positive", c.AspectRatio)
		}
		height = max(int(float64(c.ImageWidth)/c.AspectRatio), 1)
	}
	if c.SamplesPerPixel < 1 {
		c.SamplesPerPixel = 1
	}
	if c.Mode == "" {
		c.Mode = ModeDiffuse
	}
	c.height = height
	c.pixelSamplesScale = 1.0 / float64(c.SamplesPerPixel)

	c.center = c.LookFrom
	vup := c.VUp
	if vup.NearZero() {
		vup = mathutil.WorldUp
	}

	focusDist := DefaultFocalLength
	w := mathutil.Forward.Neg()
	if d := c.LookFrom.Sub(c.LookAt); !d.NearZero() {
		focusDist = d.Len()
		w = d.Normalize()
	}
	if c.FocusDist > 0 {
		focusDist = c.FocusDist
	}

	u, err := vup.Cross(w).Unit()
	if err != nil {
		return errBadBasis
	}
	c.frame = mathutil.Mat3FromColumns(u, w.Cross(u), w)
	if c.Yaw != 0 || c.Pitch != 0 {
		c.frame = mathutil.Mat3Mul(c.frame, mathutil.ViewRotation(c.Yaw, c.Pitch))
	}
	u, v, w := c.frame.Column(0), c.frame.Column(1), c.frame.Column(2)

	viewportHeight := DefaultViewportHeight
	if c.VFov > 0 {
		viewportHeight = 2 * math.Tan(mathutil.Deg2Rad(c.VFov)/2) * focusDist
	} else {
		viewportHeight *= focusDist / DefaultFocalLength
	}
	viewportWidth := viewportHeight * float64(c.ImageWidth) / float64(height)

	// Rows grow downward, so the vertical edge runs along -v.
	viewportU := u.Scale(viewportWidth)
	viewportV := v.Scale(-viewportHeight)
	c.deltaU = viewportU.Div(float64(c.ImageWidth))
	c.deltaV = viewportV.Div(float64(height))

	upperLeft := c.center.
		Sub(w.Scale(focusDist)).
		Sub(viewportU.Scale(0.5)).
		Sub(viewportV.Scale(0.5))
	c.pixel00 = upperLeft.Add(c.deltaU.Add(c.deltaV).Scale(0.5))

	c.defocus = c.DefocusAngle > 0
	c.defocusU, c.defocusV = mathutil.Vec3{}, mathutil.Vec3{}
	if c.defocus {
		radius := focusDist * math.Tan(mathutil.Deg2Rad(c.DefocusAngle/2))
		c.defocusU = u.Scale(radius)
		c.defocusV = v.Scale(radius)
	}

	c.initialized = true
	return nil
}

// Size returns the pixel dimensions resolved by Initialize.
func (c *Camera) Size() (width, height int) { return c.ImageWidth, c.height }

// Frame returns the camera basis as the columns u (right), v (up) and w (backward).
func (c *Camera) Frame() mathutil.Mat3 { return c.frame }

// Center is the eye point every ray starts from.
func (c *Camera) Center() mathutil.Vec3 { return c.center }

// PixelDeltas returns the world-space step between adjacent pixel centers.
func (c *Camera) PixelDeltas() (du, dv mathutil.Vec3) { return c.deltaU, c.deltaV }

// Pixel00 is the center of the upper-left pixel.
func (c *Camera) Pixel00() mathutil.Vec3 { return c.pixel00 }

// SampleSquare returns the anti-aliasing jitter for one sample.
func (c *Camera) SampleSquare(rng *rand.Rand) mathutil.Vec3 {
	return mathutil.SampleSquare(rng)
}

// GetRay returns a jittered ray through pixel (i, j). The direction is not
// normalized. With a defocus aperture the origin is drawn from the lens disk
// and every ray through the pixel meets at the focus plane.
func (c *Camera) GetRay(i, j int, rng *rand.Rand) mathutil.Ray {
	offset := c.SampleSquare(rng)
	sample := c.pixel00.
		Add(c.deltaU.Scale(float64(i) + offset[0])).
		Add(c.deltaV.Scale(float64(j) + offset[1]))

	origin := c.center
	if c.defocus {
		p := mathutil.RandomInUnitDisk(rng)
		origin = origin.Add(c.defocusU.Scale(p[0])).Add(c.defocusV.Scale(p[1]))
	}

	tm := c.ShutterOpen
	if c.ShutterClose > c.ShutterOpen {
		tm = mathutil.RandomRange(rng, c.ShutterOpen, c.ShutterClose)
	}
	return mathutil.NewRayWithTime(origin, sample.Sub(origin), tm)
}
