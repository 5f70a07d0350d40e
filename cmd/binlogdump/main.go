package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/localhots/gobelt/log"

	"github.com/localhots/binlogcodec/binlog"
	"github.com/localhots/binlogcodec/replica"
)

func main() {
	path := flag.String("file", "", "Path to a file of binlog events, each preceded by a 4-byte little-endian length")
	dsn := flag.String("dsn", "", "Database source name, used only to pre-seed the checksum algorithm")
	debug := flag.Bool("debug", false, "Pretty-dump every decoded event body")
	flag.Parse()

	validate(*path != "", "-file is not set")

	ctx := context.Background()
	binlog.EnableDebug = *debug

	sess := binlog.NewSession()
	if *dsn != "" {
		ca, err := replica.DetectChecksumAlgorithm(*dsn)
		if err != nil {
			log.Errorf(ctx, "Failed to detect checksum algorithm: %v", err)
			os.Exit(1)
		}
		sess.SetChecksumAlgorithm(ca)
		log.Debug(ctx, fmt.Sprintf("Detected checksum algorithm: %s", ca))
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Errorf(ctx, "Failed to open %s: %v", *path, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dump(ctx, sess, f); err != nil {
		log.Errorf(ctx, "Failed to dump events: %v", err)
		os.Exit(1)
	}
}

// dump reads length-prefixed event frames from r and feeds each one to
// sess.Decode in turn. Each frame is a 4-byte little-endian length followed
// by that many bytes of event data, matching data_written so the frame
// length and the event's own header agree.
func dump(ctx context.Context, sess *binlog.Session, r io.Reader) error {
	br := bufio.NewReader(r)
	var lenBuf [4]byte
	for {
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Annotate(err, "read frame length")
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		event := make([]byte, n)
		if _, err := io.ReadFull(br, event); err != nil {
			return errors.Annotate(err, "read frame body")
		}

		evt, err := sess.Decode(event)
		if err != nil {
			log.Errorf(ctx, "Failed to decode event: %v", err)
			if sess.State() == binlog.Poisoned {
				return errors.Annotate(err, "session poisoned")
			}
			continue
		}

		log.Debug(ctx, fmt.Sprintf("Decoded %s event at position %d", evt.Header.Type, evt.Header.LogPos))
		if binlog.EnableDebug {
			binlog.Dump(evt.Body)
		}
	}
}

func validate(cond bool, msg string) {
	if !cond {
		fmt.Println(msg)
		flag.Usage()
		os.Exit(2)
	}
}
