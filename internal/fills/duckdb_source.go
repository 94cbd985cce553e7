package fills

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-commission/internal/logger"
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"go.uber.org/zap"
)

// Columns every fill file must provide. root_symbol may be empty for equities.
var fillColumns = []string{
	"order_id",
	"symbol",
	"root_symbol",
	"asset_class",
	"CAST(amount AS DOUBLE) AS amount",
	"CAST(price AS DOUBLE) AS price",
	"CAST(time AS TIMESTAMP) AS time",
}

type DuckDBSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBSource opens a DuckDB database at path (":memory:" or empty for an
// in-memory database). Call Initialize to load a fill file.
func NewDuckDBSource(path string, logger *logger.Logger) (Source, error) {
	if path == ":memory:" {
		path = ""
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFillSourceUnavailable, "failed to open duckdb", err)
	}

	return &DuckDBSource{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize implements Source.
func (d *DuckDBSource) Initialize(path string) error {
	d.logger.Debug("Initializing fill source", zap.String("path", path))

	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(errors.ErrCodeFillSourceUnavailable, err, "fill file %s is not readable", path)
	}

	var reader string

	escaped := strings.ReplaceAll(path, "'", "''")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		reader = fmt.Sprintf("read_csv_auto('%s', header=true)", escaped)
	case ".parquet":
		reader = fmt.Sprintf("read_parquet('%s')", escaped)
	default:
		return errors.Newf(errors.ErrCodeUnsupportedFillFormat, "unsupported fill file format %q", filepath.Ext(path))
	}

	_, err := d.db.Exec(`DROP VIEW IF EXISTS fills;`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to drop existing view", err)
	}

	// Squirrel doesn't support CREATE VIEW. seq keeps file order for fills
	// sharing a timestamp.
	query := fmt.Sprintf(`
		CREATE VIEW fills AS
		SELECT *, row_number() OVER () AS seq FROM %s;
	`, reader)

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeFillQueryFailed, err, "failed to load fills from %s", path)
	}

	return nil
}

func (d *DuckDBSource) applyFilter(query squirrel.SelectBuilder, filter Filter) squirrel.SelectBuilder {
	if filter.Symbol.IsSome() {
		query = query.Where(squirrel.Eq{"symbol": filter.Symbol.Unwrap()})
	}

	if filter.OrderID.IsSome() {
		query = query.Where(squirrel.Eq{"order_id": filter.OrderID.Unwrap()})
	}

	return query
}

// Count implements Source.
func (d *DuckDBSource) Count(filter Filter) (int, error) {
	query, args, err := d.applyFilter(d.sq.Select("COUNT(*)").From("fills"), filter).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to count fills", err)
	}

	return count, nil
}

// ReadAll implements Source.
func (d *DuckDBSource) ReadAll(filter Filter) func(yield func(types.Transaction, error) bool) {
	return func(yield func(types.Transaction, error) bool) {
		query, args, err := d.applyFilter(d.sq.Select(fillColumns...).From("fills"), filter).
			OrderBy("time ASC", "seq ASC").
			ToSql()
		if err != nil {
			yield(types.Transaction{}, errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to build fill query", err))

			return
		}

		d.logger.Debug("Reading fills", zap.String("query", query))

		rows, err := d.db.Query(query, args...)
		if err != nil {
			yield(types.Transaction{}, errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to query fills", err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			tx, err := scanTransaction(rows)
			if !yield(tx, err) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(types.Transaction{}, errors.Wrap(errors.ErrCodeFillQueryFailed, "failed to iterate fills", err))
		}
	}
}

func scanTransaction(rows *sql.Rows) (types.Transaction, error) {
	var (
		orderID    string
		symbol     string
		rootSymbol sql.NullString
		assetClass string
		amount     float64
		price      float64
		timestamp  time.Time
	)

	if err := rows.Scan(&orderID, &symbol, &rootSymbol, &assetClass, &amount, &price, &timestamp); err != nil {
		return types.Transaction{}, errors.Wrap(errors.ErrCodeFillParseFailed, "failed to scan fill", err)
	}

	return types.Transaction{
		OrderID: orderID,
		Asset: types.Asset{
			Symbol:     symbol,
			RootSymbol: rootSymbol.String,
			Class:      types.AssetClass(strings.ToUpper(assetClass)),
		},
		Amount:    amount,
		Price:     price,
		Timestamp: timestamp,
	}, nil
}

// Close implements Source.
func (d *DuckDBSource) Close() error {
	return d.db.Close()
}
