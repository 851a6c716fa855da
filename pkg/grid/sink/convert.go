package sink

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/gridcal/pkg/errors"
)

// rsvgBinary is the converter invoked for PDF output. Tests override it.
var rsvgBinary = "rsvg-convert"

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgBinary); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, rsvgBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert: %s", strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
