package game

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goban/internal/errors"
)

type ImportReport struct {
	Imported []string
	Rejected []string
}

// ImportDirectory walks root and imports every *.sgf file it finds.
// Files that are not 19x19 records are listed in Rejected; any other
// failure stops the walk.
func (g *GameUseCase) ImportDirectory(ctx context.Context, root string) (ImportReport, error) {
	var report ImportReport
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".sgf") {
			return nil
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		rec, err := g.ImportRecord(ctx, string(data))
		if stderrors.Is(err, errors.ErrRecordRejected) {
			g.log.Warnf("record import: %s rejected", path)
			report.Rejected = append(report.Rejected, path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		report.Imported = append(report.Imported, rec.RecordID)
		return nil
	})
	return report, err
}
