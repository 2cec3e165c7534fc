package badge

import (
	"fmt"
	"strings"
)

// circularMask zeroes the alpha of every pixel outside the inscribed circle
// of the (square) frame and leaves the rest untouched.
const circularMask = "geq=" +
	"r='r(X,Y)':g='g(X,Y)':b='b(X,Y)':" +
	"a='if(lte((X-W/2)*(X-W/2)+(Y-H/2)*(Y-H/2),(W/2)*(W/2)),255,0)'"

// BuildFilterGraph produces the ffmpeg -vf expression for a badge: crop to
// the selected square, scale to the output side (lanczos), resample the
// frame rate, then apply the circular alpha mask in RGBA space.
//
// Pure function; geometry is validated against zero/negative values here and
// against the source bounds by CropRegion.Validate before a run starts.
func BuildFilterGraph(crop CropRegion, outputSide, frameRate int) (string, error) {
	if crop.Side <= 0 {
		return "", &InvalidGeometryError{Crop: crop}
	}
	if outputSide < 0 {
		return "", &InvalidSettingsError{Field: "output side", Value: outputSide}
	}
	if outputSide == SideOriginal {
		outputSide = crop.Side
	}

	filters := []string{
		fmt.Sprintf("crop=%d:%d:%d:%d", crop.Side, crop.Side, crop.X, crop.Y),
	}
	if outputSide != crop.Side {
		filters = append(filters, fmt.Sprintf("scale=%d:%d:flags=lanczos", outputSide, outputSide))
	}
	if frameRate > 0 {
		filters = append(filters, fmt.Sprintf("fps=%d", frameRate))
	}
	filters = append(filters, "format=rgba", circularMask)

	return strings.Join(filters, ","), nil
}
