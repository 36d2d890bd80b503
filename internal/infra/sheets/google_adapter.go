package sheets

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// GoogleOptions configures the Sheets API adapter.
type GoogleOptions struct {
	SpreadsheetID string
	// Endpoint overrides the API base URL (tests, proxies).
	Endpoint string
	// AppendSpan is the column span used to locate the table on append.
	AppendSpan string
	// HTTPClient carries the transport timeouts; it must not add credentials.
	HTTPClient *http.Client
}

// googleAdapter implements RangeAdapter with the Sheets API v4 values resource.
type googleAdapter struct {
	svc           *gsheets.Service
	spreadsheetID string
	appendSpan    string
	tokens        service.TokenProvider
	logger        *slog.Logger
}

// NewGoogleAdapter creates a Sheets API adapter. The bearer token is not
// bound to the client: it is fetched from tokens before every call.
func NewGoogleAdapter(ctx context.Context, opts GoogleOptions, tokens service.TokenProvider, logger *slog.Logger) (RangeAdapter, error) {
	if opts.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required for google backend")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	svc, err := gsheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets service")
	}

	appendSpan := opts.AppendSpan
	if appendSpan == "" {
		appendSpan = DefaultAppendSpan
	}

	logger.Info("Google Sheets adapter initialized", slog.String("spreadsheet_id", opts.SpreadsheetID))

	return &googleAdapter{
		svc:           svc,
		spreadsheetID: opts.SpreadsheetID,
		appendSpan:    appendSpan,
		tokens:        tokens,
		logger:        logger,
	}, nil
}

// headerSetter is implemented by every generated call type.
type headerSetter interface {
	Header() http.Header
}

func (a *googleAdapter) authorize(ctx context.Context, call headerSetter) error {
	if !a.tokens.IsAuthenticated(ctx) {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	token, err := a.tokens.BearerToken(ctx)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return errors.Wrap(err, "failed to get bearer token")
		}

		return domainerrors.NewRemoteCallError(domainerrors.ErrUnauthenticated, err, "bearer token")
	}
	if token == "" {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	call.Header().Set("Authorization", "Bearer "+token)

	return nil
}

func (a *googleAdapter) ReadRange(ctx context.Context, sheet, rng string) ([][]any, error) {
	fullRange := QualifiedRange(sheet, rng)
	call := a.svc.Spreadsheets.Values.Get(a.spreadsheetID, fullRange).Context(ctx)
	if err := a.authorize(ctx, call); err != nil {
		return nil, err
	}

	resp, err := call.Do()
	if err != nil {
		return nil, a.translate(ctx, err, "read "+fullRange)
	}

	return resp.Values, nil
}

func (a *googleAdapter) BatchRead(ctx context.Context, requests []RangeRequest) ([][][]any, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	ranges := make([]string, 0, len(requests))
	for _, r := range requests {
		ranges = append(ranges, QualifiedRange(r.Sheet, r.Range))
	}

	call := a.svc.Spreadsheets.Values.BatchGet(a.spreadsheetID).Ranges(ranges...).Context(ctx)
	if err := a.authorize(ctx, call); err != nil {
		return nil, err
	}

	resp, err := call.Do()
	if err != nil {
		return nil, a.translate(ctx, err, "batch read "+strings.Join(ranges, ","))
	}

	grids := make([][][]any, len(requests))
	for i, vr := range resp.ValueRanges {
		if i >= len(grids) {
			break
		}
		grids[i] = vr.Values
	}

	return grids, nil
}

func (a *googleAdapter) WriteRange(ctx context.Context, sheet, rng string, grid [][]any) error {
	fullRange := QualifiedRange(sheet, rng)
	call := a.svc.Spreadsheets.Values.
		Update(a.spreadsheetID, fullRange, &gsheets.ValueRange{Values: grid}).
		ValueInputOption(ValueInputUserEntered).
		Context(ctx)
	if err := a.authorize(ctx, call); err != nil {
		return err
	}

	if _, err := call.Do(); err != nil {
		return a.translate(ctx, err, "write "+fullRange)
	}

	return nil
}

func (a *googleAdapter) AppendRows(ctx context.Context, sheet string, grid [][]any) error {
	fullRange := QualifiedRange(sheet, a.appendSpan)
	call := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, fullRange, &gsheets.ValueRange{Values: grid}).
		ValueInputOption(ValueInputUserEntered).
		InsertDataOption("INSERT_ROWS").
		Context(ctx)
	if err := a.authorize(ctx, call); err != nil {
		return err
	}

	if _, err := call.Do(); err != nil {
		return a.translate(ctx, err, "append "+fullRange)
	}

	return nil
}

func (a *googleAdapter) BatchWriteCells(ctx context.Context, sheet string, cells []CellUpdate) error {
	if len(cells) == 0 {
		return nil
	}

	data := make([]*gsheets.ValueRange, 0, len(cells))
	for _, c := range cells {
		data = append(data, &gsheets.ValueRange{
			Range:  QualifiedRange(sheet, c.Address),
			Values: [][]any{{c.Value}},
		})
	}

	call := a.svc.Spreadsheets.Values.
		BatchUpdate(a.spreadsheetID, &gsheets.BatchUpdateValuesRequest{
			ValueInputOption: ValueInputUserEntered,
			Data:             data,
		}).
		Context(ctx)
	if err := a.authorize(ctx, call); err != nil {
		return err
	}

	if _, err := call.Do(); err != nil {
		return a.translate(ctx, err, "batch write "+sheet)
	}

	return nil
}

// translate maps API failures onto the domain taxonomy. A 401 also signs the
// user out so the next call requests authorization again.
func (a *googleAdapter) translate(ctx context.Context, err error, details string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized:
			a.logger.Warn("Spreadsheet service rejected the token, signing out", slog.String("call", details))
			a.tokens.SignOut(ctx)

			return domainerrors.NewRemoteCallError(domainerrors.ErrSessionExpired, err, details)
		case apiErr.Code == http.StatusForbidden:
			return domainerrors.NewRemoteCallError(domainerrors.ErrUnauthenticated, err, details)
		case apiErr.Code == http.StatusNotFound,
			apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
			return domainerrors.NewRemoteCallError(domainerrors.ErrNotFound, err, details)
		}
	}

	a.logger.Error("Spreadsheet call failed", slog.String("call", details), slog.Any("error", err))

	return domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, details)
}
