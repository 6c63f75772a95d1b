package codepdf

import (
	"context"
	"fmt"

	"github.com/welbornprod/codepdf/internal/fileutil"
)

// Emit writes the assembled document to the target: HTML as UTF-8 text, or
// through the PDF converter for PDF targets. Writes are atomic, so a failed
// run leaves no partial file at the target path.
func (s *Service) Emit(ctx context.Context, document string, target OutputTarget) error {
	if target.Format == FormatHTML {
		if err := fileutil.WriteFileAtomic(target.Path, []byte(document)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, target.Path, err)
		}
		return nil
	}

	pdfBytes, err := s.pdf.ToPDF(ctx, document, &pdfOptions{Page: s.cfg.page})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(target.Path, pdfBytes); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, target.Path, err)
	}
	return nil
}
