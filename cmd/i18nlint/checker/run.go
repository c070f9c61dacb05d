package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/lifei6671/i18nlint"
	"github.com/lifei6671/i18nlint/cmd/i18nlint/config"
	"github.com/lifei6671/i18nlint/internal/logger"
	"github.com/lifei6671/i18nlint/tsobject"
)

// Run checks the two configured dictionaries and writes the report to w.
//
// A missing file, an unparsable dictionary or an empty dictionary is
// reported on w and yields (nil, nil); only unexpected I/O errors are
// returned.
func Run(ctx context.Context, cfg config.KeysConfig, w io.Writer) (*Result, error) {
	for _, loc := range []config.LocaleConfig{cfg.Base, cfg.Target} {
		if _, err := os.Stat(loc.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(w, "file not found: %s\n", loc.Path)
				return nil, nil
			}
			return nil, fmt.Errorf("stat %s: %w", loc.Path, err)
		}
	}

	dicts := make([]i18nlint.Dictionary, 0, 2)
	for _, loc := range []config.LocaleConfig{cfg.Base, cfg.Target} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		label := loc.DisplayLabel()
		d, err := LoadDictionary(loc.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil, fmt.Errorf("read %s: %w", loc.Path, err)
			}
			logDecodeError(loc.Path, err)
			fmt.Fprintf(w, "failed to parse %s\n", label)
			return nil, nil
		}
		if len(d) == 0 {
			fmt.Fprintf(w, "%s is empty\n", label)
			return nil, nil
		}
		dicts = append(dicts, d)
	}

	baseLabel, targetLabel := cfg.Base.DisplayLabel(), cfg.Target.DisplayLabel()
	fmt.Fprintf(w, "Checking key consistency between %s and %s...\n", baseLabel, targetLabel)
	res := Compare(dicts[0], dicts[1], baseLabel, targetLabel)
	WriteReport(w, res)
	return res, nil
}

func logDecodeError(path string, err error) {
	fields := []zap.Field{zap.String("path", path), zap.Error(err)}
	var perr *tsobject.ParseError
	if errors.As(err, &perr) {
		fields = append(fields, zap.String("excerpt", perr.Excerpt))
	}
	logger.L().Warn("failed to decode dictionary", fields...)
}
