package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const cmPerInch = 2.54

// PDFRenderer prints the sheet with headless Chrome.
type PDFRenderer struct {
	timeout  time.Duration
	allocOpt []chromedp.ExecAllocatorOption
	logger   *slog.Logger
}

func NewPDFRenderer(timeout time.Duration, opts ...chromedp.ExecAllocatorOption) *PDFRenderer {
	return &PDFRenderer{
		timeout:  timeout,
		allocOpt: opts,
		logger:   slog.With(slog.String("service", "pdf_renderer")),
	}
}

func (r *PDFRenderer) Extension() string {
	return "pdf"
}

func (r *PDFRenderer) Render(ctx context.Context, sheet *Sheet) ([]byte, error) {
	start := time.Now()

	html, err := sheet.HTML()
	if err != nil {
		return nil, err
	}

	if len(r.allocOpt) > 0 {
		opts := append(chromedp.DefaultExecAllocatorOptions[:], r.allocOpt...)
		var cancelAlloc context.CancelFunc
		ctx, cancelAlloc = chromedp.NewExecAllocator(ctx, opts...)
		defer cancelAlloc()
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	if r.timeout > 0 {
		chromedpCtx, cancel = context.WithTimeout(chromedpCtx, r.timeout)
		defer cancel()
	}

	s := sheet.Settings
	var pdf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(s.PageWidth / cmPerInch).
				WithPaperHeight(s.PageHeight / cmPerInch).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		r.logger.Error("Failed to print sheet",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	r.logger.Info("Printed sheet",
		slog.Int("pages", len(sheet.Pages)),
		slog.Int("bytes", len(pdf)),
		slog.Duration("elapsed", time.Since(start)))
	return pdf, nil
}
