package binlog

import "fmt"

// EventType identifies the kind of a binlog event.
type EventType byte

// Spec: https://dev.mysql.com/doc/internals/en/event-classes-and-types.html
const (
	// EventTypeUnknown is an event that should never occur.
	EventTypeUnknown EventType = 0
	// EventTypeStartV3 is the Start_event of binlog format 3.
	EventTypeStartV3 EventType = 1
	// EventTypeQuery is created for each query that modifies the database,
	// unless the query is logged row-based.
	EventTypeQuery EventType = 2
	// EventTypeStop is written when a master shuts down, or when a slave
	// shuts down or executes RESET SLAVE.
	EventTypeStop EventType = 3
	// EventTypeRotate is written at the end of a file that has exceeded its
	// size limit, pointing to the next file in the sequence.
	EventTypeRotate EventType = 4
	// EventTypeIntvar is written just before a Query event that uses
	// LAST_INSERT_ID or INSERT_ID.
	EventTypeIntvar EventType = 5
	// EventTypeLoad is used for LOAD DATA INFILE statements in MySQL 3.23.
	EventTypeLoad EventType = 6
	// EventTypeSlave is a no-op retained for binlog format compatibility.
	EventTypeSlave EventType = 7
	// EventTypeCreateFile is the first event of a LOAD DATA INFILE sequence.
	EventTypeCreateFile EventType = 8
	// EventTypeAppendBlock carries file data for a LOAD DATA INFILE sequence.
	EventTypeAppendBlock EventType = 9
	// EventTypeExecLoad triggers execution of a previously loaded file.
	EventTypeExecLoad EventType = 10
	// EventTypeDeleteFile notifies a slave to discard a temporary load file
	// after the load failed on the master.
	EventTypeDeleteFile EventType = 11
	// EventTypeNewLoad is an extended LOAD DATA INFILE event.
	EventTypeNewLoad EventType = 12
	// EventTypeRand logs the random seed used by the next RAND() call.
	EventTypeRand EventType = 13
	// EventTypeUserVar is written every time a statement uses a user
	// variable, immediately preceding the Query event for that statement.
	EventTypeUserVar EventType = 14
	// EventTypeFormatDescription describes the binlog format itself; it is
	// the first event of every binlog file from version 4 onward.
	EventTypeFormatDescription EventType = 15
	// EventTypeXID is generated for a commit of a transaction that touches
	// an XA-capable storage engine.
	EventTypeXID EventType = 16
	// EventTypeBeginLoadQuery is the first block of a file to be loaded; it
	// truncates or creates the target file before writing.
	EventTypeBeginLoadQuery EventType = 17
	// EventTypeExecuteLoadQuery drives LOAD DATA execution, substituting the
	// original filename with the name of the temporary load file.
	EventTypeExecuteLoadQuery EventType = 18
	// EventTypeTableMap precedes row events in row-based mode, mapping a
	// table identifier to a schema, table name, and column definitions.
	EventTypeTableMap EventType = 19
	// EventTypePreGAWriteRows is the pre-general-availability write-rows
	// event, used only by MySQL 5.1.0-5.1.15.
	EventTypePreGAWriteRows EventType = 20
	// EventTypePreGAUpdateRows is the pre-general-availability update-rows
	// event, used only by MySQL 5.1.0-5.1.15.
	EventTypePreGAUpdateRows EventType = 21
	// EventTypePreGADeleteRows is the pre-general-availability delete-rows
	// event, used only by MySQL 5.1.0-5.1.15.
	EventTypePreGADeleteRows EventType = 22
	// EventTypeWriteRowsV1 represents inserted rows, MySQL 5.1.15-5.6.
	EventTypeWriteRowsV1 EventType = 23
	// EventTypeUpdateRowsV1 represents updated rows, MySQL 5.1.15-5.6.
	EventTypeUpdateRowsV1 EventType = 24
	// EventTypeDeleteRowsV1 represents deleted rows, MySQL 5.1.15-5.6.
	EventTypeDeleteRowsV1 EventType = 25
	// EventTypeIncident signals that something out of the ordinary happened
	// on the master, possibly leaving the database in an inconsistent state.
	EventTypeIncident EventType = 26
	// EventTypeHeartbeat is sent by the master's dump thread to let a slave
	// know it is still alive; it is never written to a relay log.
	EventTypeHeartbeat EventType = 27
	// EventTypeIgnorable is a kind of event that can be safely skipped by a
	// reader that doesn't understand it.
	EventTypeIgnorable EventType = 28
	// EventTypeRowsQuery is an Ignorable event that records the original
	// query text for the row events that follow it.
	EventTypeRowsQuery EventType = 29
	// EventTypeWriteRowsV2 represents inserted rows, MySQL 5.6+.
	EventTypeWriteRowsV2 EventType = 30
	// EventTypeUpdateRowsV2 represents updated rows, MySQL 5.6+.
	EventTypeUpdateRowsV2 EventType = 31
	// EventTypeDeleteRowsV2 represents deleted rows, MySQL 5.6+.
	EventTypeDeleteRowsV2 EventType = 32
	// EventTypeGTID carries a transaction's global transaction identifier.
	EventTypeGTID EventType = 33
	// EventTypeAnonymousGTID carries the same payload as EventTypeGTID for a
	// transaction that has no real GTID assigned.
	EventTypeAnonymousGTID EventType = 34
	// EventTypePreviousGTIDs carries the set of GTIDs already present in
	// previous binlog files.
	EventTypePreviousGTIDs EventType = 35
	// EventTypeUserDefined marks the start of the range reserved for
	// third-party extensions to the format.
	EventTypeUserDefined EventType = 36
)

// IsRowsEvent reports whether et is one of the write/update/delete row event
// variants, across all three generations of the row event wire format.
func (et EventType) IsRowsEvent() bool {
	switch et {
	case EventTypePreGAWriteRows, EventTypePreGAUpdateRows, EventTypePreGADeleteRows,
		EventTypeWriteRowsV1, EventTypeUpdateRowsV1, EventTypeDeleteRowsV1,
		EventTypeWriteRowsV2, EventTypeUpdateRowsV2, EventTypeDeleteRowsV2:
		return true
	default:
		return false
	}
}

// usesExtraData reports whether et's rows-event body carries a variable
// length extra-data block before the column bitmaps (V2 only).
func (et EventType) usesExtraData() bool {
	switch et {
	case EventTypeWriteRowsV2, EventTypeUpdateRowsV2, EventTypeDeleteRowsV2:
		return true
	default:
		return false
	}
}

// hasSecondColumnBitmap reports whether et's rows-event body carries a second
// column bitmap, used by update events to describe the "after" image.
func (et EventType) hasSecondColumnBitmap() bool {
	switch et {
	case EventTypePreGAUpdateRows, EventTypeUpdateRowsV1, EventTypeUpdateRowsV2:
		return true
	default:
		return false
	}
}

func (et EventType) String() string {
	switch et {
	case EventTypeUnknown:
		return "Unknown"
	case EventTypeStartV3:
		return "StartV3"
	case EventTypeQuery:
		return "Query"
	case EventTypeStop:
		return "Stop"
	case EventTypeRotate:
		return "Rotate"
	case EventTypeIntvar:
		return "Intvar"
	case EventTypeLoad:
		return "Load"
	case EventTypeSlave:
		return "Slave"
	case EventTypeCreateFile:
		return "CreateFile"
	case EventTypeAppendBlock:
		return "AppendBlock"
	case EventTypeExecLoad:
		return "ExecLoad"
	case EventTypeDeleteFile:
		return "DeleteFile"
	case EventTypeNewLoad:
		return "NewLoad"
	case EventTypeRand:
		return "Rand"
	case EventTypeUserVar:
		return "UserVar"
	case EventTypeFormatDescription:
		return "FormatDescription"
	case EventTypeXID:
		return "XID"
	case EventTypeBeginLoadQuery:
		return "BeginLoadQuery"
	case EventTypeExecuteLoadQuery:
		return "ExecuteLoadQuery"
	case EventTypeTableMap:
		return "TableMap"
	case EventTypePreGAWriteRows:
		return "PreGAWriteRows"
	case EventTypePreGAUpdateRows:
		return "PreGAUpdateRows"
	case EventTypePreGADeleteRows:
		return "PreGADeleteRows"
	case EventTypeWriteRowsV1:
		return "WriteRowsV1"
	case EventTypeUpdateRowsV1:
		return "UpdateRowsV1"
	case EventTypeDeleteRowsV1:
		return "DeleteRowsV1"
	case EventTypeIncident:
		return "Incident"
	case EventTypeHeartbeat:
		return "Heartbeat"
	case EventTypeIgnorable:
		return "Ignorable"
	case EventTypeRowsQuery:
		return "RowsQuery"
	case EventTypeWriteRowsV2:
		return "WriteRowsV2"
	case EventTypeUpdateRowsV2:
		return "UpdateRowsV2"
	case EventTypeDeleteRowsV2:
		return "DeleteRowsV2"
	case EventTypeGTID:
		return "GTID"
	case EventTypeAnonymousGTID:
		return "AnonymousGTID"
	case EventTypePreviousGTIDs:
		return "PreviousGTIDs"
	case EventTypeUserDefined:
		return "UserDefined"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(et))
	}
}
