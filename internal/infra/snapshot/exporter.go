// Package snapshot copies every sheet of the workbook into a standalone
// .xlsx file and stores it in a blob bucket.
package snapshot

import (
	"context"
	"log/slog"
	"time"

	"nutrisheet/config"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/util"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exporter reads the whole workbook in one batch and writes it to a bucket.
type Exporter struct {
	adapter   sheets.RangeAdapter
	layouts   *model.Layouts
	bucket    *blob.Bucket
	keyPrefix string
	logger    *slog.Logger
	now       func() time.Time
}

// Open opens the configured bucket. The caller closes the exporter.
func Open(
	ctx context.Context,
	cfg config.SnapshotConfig,
	adapter sheets.RangeAdapter,
	layouts *model.Layouts,
	logger *slog.Logger,
) (*Exporter, error) {
	if cfg.BucketURL == "" {
		return nil, errors.New("snapshot.bucketUrl is not configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	return newExporter(bucket, cfg.KeyPrefix, adapter, layouts, logger), nil
}

func newExporter(bucket *blob.Bucket, keyPrefix string, adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) *Exporter {
	return &Exporter{
		adapter:   adapter,
		layouts:   layouts,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		logger:    logger,
		now:       time.Now,
	}
}

// Result describes a stored snapshot.
type Result struct {
	Key    string `json:"key"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Export stores a snapshot. The checksum is also kept in the blob metadata.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	layouts := e.layouts.All()
	requests := make([]sheets.RangeRequest, len(layouts))
	for i, s := range layouts {
		// Row 1 is included so the copy keeps the headers.
		requests[i] = sheets.RangeRequest{Sheet: s.Sheet, Range: sheets.Span(1, 1, s.LastColumn(), s.LastRow)}
	}

	grids, err := e.adapter.BatchRead(ctx, requests)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workbook")
	}

	f, err := buildWorkbook(requests, grids)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render workbook")
	}

	res := &Result{
		Key:    e.keyPrefix + "nutrition-" + e.now().UTC().Format("20060102T150405Z") + ".xlsx",
		Size:   int64(buf.Len()),
		SHA256: util.Checksum(buf.Bytes()),
	}

	err = e.bucket.WriteAll(ctx, res.Key, buf.Bytes(), &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"sha256": res.SHA256},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", res.Key)
	}

	e.logger.Info("Snapshot exported",
		slog.String("key", res.Key),
		slog.String("size", util.FormatBytes(res.Size)),
		slog.Int("sheets", len(requests)),
	)

	return res, nil
}

// Close releases the bucket.
func (e *Exporter) Close() error {
	return e.bucket.Close()
}

func buildWorkbook(requests []sheets.RangeRequest, grids [][][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	for i, req := range requests {
		sheet := sheets.WorkbookSheetName(req.Sheet)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()

			return nil, errors.Wrapf(err, "failed to create sheet %q", req.Sheet)
		}

		var grid [][]any
		if i < len(grids) {
			grid = grids[i]
		}
		for r, row := range grid {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				f.Close()

				return nil, errors.WithStack(err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				f.Close()

				return nil, errors.Wrapf(err, "failed to copy %s row %d", req.Sheet, r+1)
			}
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		f.Close()

		return nil, errors.WithStack(err)
	}

	return f, nil
}
