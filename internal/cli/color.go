package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

// ErrUnknownColorProfile is returned for an unrecognized --color value.
var ErrUnknownColorProfile = errors.New("unknown color profile")

// parseColorProfile maps a --color value to a profile. forced is false for
// "auto", where the profile is detected from the output.
func parseColorProfile(s string) (p colorprofile.Profile, forced bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return colorprofile.NoTTY, false, nil
	case "truecolor", "24bit":
		return colorprofile.TrueColor, true, nil
	case "ansi256", "256":
		return colorprofile.ANSI256, true, nil
	case "ansi", "16":
		return colorprofile.ANSI, true, nil
	case "ascii":
		return colorprofile.Ascii, true, nil
	case "none", "notty":
		return colorprofile.NoTTY, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownColorProfile, s)
	}
}

// output wraps w so styled text is downsampled to the detected or forced
// color profile.
func (o *options) output(w io.Writer) (*colorprofile.Writer, error) {
	p, forced, err := parseColorProfile(o.color)
	if err != nil {
		return nil, err
	}

	cw := colorprofile.NewWriter(w, os.Environ())
	if forced {
		cw.Profile = p
	}

	o.log.Debug("output color profile", "profile", cw.Profile.String(), "forced", forced)

	return cw, nil
}
