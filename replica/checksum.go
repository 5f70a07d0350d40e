// Package replica holds the small pieces of this module that need a live
// connection to a database server. None of it is imported by package binlog;
// it exists so a caller that does have a connection handy can discover
// values binlog.Session needs without re-implementing the query itself.
package replica

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/juju/errors"

	"github.com/localhots/binlogcodec/binlog"
)

// DetectChecksumAlgorithm opens dsn, reads the server's binlog_checksum
// system variable, and returns the binlog.ChecksumAlgorithm a Session should
// be primed with via Session.SetChecksumAlgorithm before decoding a stream
// from that server. It does not keep the connection open.
func DetectChecksumAlgorithm(dsn string) (binlog.ChecksumAlgorithm, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return binlog.ChecksumAlgorithmUndefined, errors.Annotate(err, "open connection")
	}
	defer db.Close()

	val, err := getVar(db, "binlog_checksum")
	if err != nil {
		return binlog.ChecksumAlgorithmUndefined, errors.Annotate(err, "read binlog_checksum")
	}

	switch val {
	case "NONE":
		return binlog.ChecksumAlgorithmOff, nil
	case "CRC32":
		return binlog.ChecksumAlgorithmCRC32, nil
	default:
		return binlog.ChecksumAlgorithmUndefined, errors.Errorf("unrecognized binlog_checksum value %q", val)
	}
}

// DisableChecksum sets @master_binlog_checksum to NONE on the given
// connection, the same protocol dance a replica performs before registering
// as a slave. Useful for a caller that would rather not verify checksums
// itself and wants the server to stop appending them in the first place.
func DisableChecksum(db *sql.DB) error {
	cs, err := getVar(db, "binlog_checksum")
	if err != nil {
		return errors.Annotate(err, "read binlog_checksum")
	}
	if cs == "NONE" {
		return nil
	}
	if _, err := db.Exec("SET @master_binlog_checksum = 'NONE'"); err != nil {
		return errors.Annotate(err, "set master_binlog_checksum")
	}
	return nil
}

func getVar(db *sql.DB, name string) (string, error) {
	row := db.QueryRow(fmt.Sprintf("SHOW VARIABLES LIKE %q", name))
	var varName, value string
	if err := row.Scan(&varName, &value); err != nil {
		return "", errors.Trace(err)
	}
	return value, nil
}
