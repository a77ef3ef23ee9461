package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const (
	DEFAULT_WINDOW = 7 * 24 * time.Hour
)

// GasRecord compares the relay fee collected on the source chain with the
// gas actually spent on the destination chain.
type GasRecord struct {
	RecordTime        time.Time
	SourceDomain      uint32
	DestinationDomain uint32
	GasUsed           uint64
	GasPrice          *big.Int
	SentValue         decimal.Decimal
	ActualValue       decimal.Decimal
	SourceTxHash      string
	DestinationTxHash string
}

func (r GasRecord) Diff() decimal.Decimal {
	return r.SentValue.Sub(r.ActualValue)
}

// GasRecorder appends gas records into fixed length time windows.
type GasRecorder struct {
	db     *sql.DB
	window time.Duration
}

func OpenGasRecorder(path string, window time.Duration) (*GasRecorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return NewGasRecorder(db, window)
}

func NewGasRecorder(db *sql.DB, window time.Duration) (*GasRecorder, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS gas_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			window_start INTEGER,
			record_time INTEGER,
			src_domain INTEGER,
			dst_domain INTEGER,
			gas_used INTEGER,
			gas_price TEXT,
			send_value TEXT,
			actual_value TEXT,
			diff_value TEXT,
			src_txid TEXT,
			dst_txid TEXT
		)
	`)
	if err != nil {
		return nil, err
	}

	return &GasRecorder{
		db:     db,
		window: window,
	}, nil
}

// WindowStart returns the start of the window the time falls into.
func (r *GasRecorder) WindowStart(t time.Time) time.Time {
	return t.UTC().Truncate(r.window)
}

func (r *GasRecorder) Record(ctx context.Context, rec GasRecord) error {
	gasPrice := rec.GasPrice
	if gasPrice == nil {
		gasPrice = big.NewInt(0)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gas_records (window_start, record_time, src_domain, dst_domain, gas_used, gas_price, send_value, actual_value, diff_value, src_txid, dst_txid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.WindowStart(rec.RecordTime).Unix(),
		rec.RecordTime.Unix(),
		rec.SourceDomain,
		rec.DestinationDomain,
		// nolint:gosec
		int64(rec.GasUsed),
		gasPrice.String(),
		rec.SentValue.String(),
		rec.ActualValue.String(),
		rec.Diff().String(),
		rec.SourceTxHash,
		rec.DestinationTxHash,
	)
	return err
}

// Window returns the records of the window containing t in insertion order.
func (r *GasRecorder) Window(ctx context.Context, t time.Time) ([]GasRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT record_time, src_domain, dst_domain, gas_used, gas_price, send_value, actual_value, src_txid, dst_txid
		FROM gas_records
		WHERE window_start = ?
		ORDER BY id
	`, r.WindowStart(t).Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GasRecord, 0)
	for rows.Next() {
		var rec GasRecord
		var recordTime, gasUsed int64
		var gasPrice, sent, actual string
		err := rows.Scan(&recordTime, &rec.SourceDomain, &rec.DestinationDomain, &gasUsed, &gasPrice, &sent, &actual, &rec.SourceTxHash, &rec.DestinationTxHash)
		if err != nil {
			return nil, err
		}

		// nolint:gosec
		rec.GasUsed = uint64(gasUsed)
		var ok bool
		rec.GasPrice, ok = new(big.Int).SetString(gasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid gas price %s", gasPrice)
		}

		rec.RecordTime = time.Unix(recordTime, 0)
		rec.SentValue, err = decimal.NewFromString(sent)
		if err != nil {
			return nil, err
		}
		rec.ActualValue, err = decimal.NewFromString(actual)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *GasRecorder) Close() error {
	return r.db.Close()
}
