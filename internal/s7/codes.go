// internal/s7/codes.go
package s7

import "fmt"

// Code is a client/transport result code. Zero means success.
// A non-zero Code is usable as an error value.
type Code uint32

// Error implements error.
func (c Code) Error() string {
	if s, ok := codeText[c]; ok {
		return fmt.Sprintf("s7: %s (0x%08X)", s, uint32(c))
	}
	return fmt.Sprintf("s7: error 0x%08X", uint32(c))
}

// ErrorCode exposes the raw numeric value.
func (c Code) ErrorCode() uint32 { return uint32(c) }

// OK reports whether c is the success code.
func (c Code) OK() bool { return c == 0 }

// ---- TCP ----

const (
	ErrTCPSocketCreation    Code = 0x00000001
	ErrTCPConnectionTimeout Code = 0x00000002
	ErrTCPConnectionFailed  Code = 0x00000003
	ErrTCPReceiveTimeout    Code = 0x00000004
	ErrTCPDataReceive       Code = 0x00000005
	ErrTCPSendTimeout       Code = 0x00000006
	ErrTCPDataSend          Code = 0x00000007
	ErrTCPConnectionReset   Code = 0x00000008
	ErrTCPNotConnected      Code = 0x00000009
	ErrTCPUnreachableHost   Code = 0x00002751
)

// ---- ISO ----

const (
	ErrIsoConnect         Code = 0x00010000
	ErrIsoInvalidPDU      Code = 0x00030000
	ErrIsoInvalidDataSize Code = 0x00040000
)

// ---- CLIENT ----

const (
	ErrCliNegotiatingPDU         Code = 0x00100000
	ErrCliInvalidParams          Code = 0x00200000
	ErrCliJobPending             Code = 0x00300000
	ErrCliTooManyItems           Code = 0x00400000
	ErrCliInvalidWordLen         Code = 0x00500000
	ErrCliPartialDataWritten     Code = 0x00600000
	ErrCliSizeOverPDU            Code = 0x00700000
	ErrCliInvalidPlcAnswer       Code = 0x00800000
	ErrCliAddressOutOfRange      Code = 0x00900000
	ErrCliInvalidTransportSize   Code = 0x00A00000
	ErrCliWriteDataSizeMismatch  Code = 0x00B00000
	ErrCliItemNotAvailable       Code = 0x00C00000
	ErrCliInvalidValue           Code = 0x00D00000
	ErrCliCannotStartPLC         Code = 0x00E00000
	ErrCliAlreadyRun             Code = 0x00F00000
	ErrCliCannotStopPLC          Code = 0x01000000
	ErrCliCannotCopyRamToRom     Code = 0x01100000
	ErrCliCannotCompress         Code = 0x01200000
	ErrCliAlreadyStop            Code = 0x01300000
	ErrCliFunNotAvailable        Code = 0x01400000
	ErrCliUploadSequenceFailed   Code = 0x01500000
	ErrCliInvalidDataSizeRecvd   Code = 0x01600000
	ErrCliInvalidBlockType       Code = 0x01700000
	ErrCliInvalidBlockNumber     Code = 0x01800000
	ErrCliInvalidBlockSize       Code = 0x01900000
	ErrCliNeedPassword           Code = 0x01D00000
	ErrCliInvalidPassword        Code = 0x01E00000
	ErrCliNoPasswordToSetOrClear Code = 0x01F00000
	ErrCliJobTimeout             Code = 0x02000000
	ErrCliPartialDataRead        Code = 0x02100000
	ErrCliBufferTooSmall         Code = 0x02200000
	ErrCliFunctionRefused        Code = 0x02300000
	ErrCliDestroying             Code = 0x02400000
	ErrCliInvalidParamNumber     Code = 0x02500000
	ErrCliCannotChangeParam      Code = 0x02600000
	ErrCliFunctionNotImplemented Code = 0x02700000
)

var codeText = map[Code]string{
	ErrTCPSocketCreation:    "TCP socket creation error",
	ErrTCPConnectionTimeout: "TCP connection timeout",
	ErrTCPConnectionFailed:  "TCP connection failed",
	ErrTCPReceiveTimeout:    "TCP receive timeout",
	ErrTCPDataReceive:       "TCP data receive error",
	ErrTCPSendTimeout:       "TCP send timeout",
	ErrTCPDataSend:          "TCP data send error",
	ErrTCPConnectionReset:   "TCP connection reset by peer",
	ErrTCPNotConnected:      "client not connected",
	ErrTCPUnreachableHost:   "unreachable host",

	ErrIsoConnect:         "ISO connection error",
	ErrIsoInvalidPDU:      "ISO invalid PDU received",
	ErrIsoInvalidDataSize: "ISO invalid buffer passed to send/receive",

	ErrCliNegotiatingPDU:         "CPU: error in PDU negotiation",
	ErrCliInvalidParams:          "CLI: invalid parameters",
	ErrCliJobPending:             "CLI: job pending",
	ErrCliTooManyItems:           "CLI: too many items (>20) in multi read/write",
	ErrCliInvalidWordLen:         "CLI: invalid word length",
	ErrCliPartialDataWritten:     "CLI: partial data written",
	ErrCliSizeOverPDU:            "CPU: total data exceeds the PDU size",
	ErrCliInvalidPlcAnswer:       "CLI: invalid CPU answer",
	ErrCliAddressOutOfRange:      "CPU: address out of range",
	ErrCliInvalidTransportSize:   "CPU: invalid transport size",
	ErrCliWriteDataSizeMismatch:  "CPU: data size mismatch",
	ErrCliItemNotAvailable:       "CPU: item not available",
	ErrCliInvalidValue:           "CPU: invalid value supplied",
	ErrCliCannotStartPLC:         "CPU: cannot start PLC",
	ErrCliAlreadyRun:             "CPU: PLC already RUN",
	ErrCliCannotStopPLC:          "CPU: cannot stop PLC",
	ErrCliCannotCopyRamToRom:     "CPU: cannot copy RAM to ROM",
	ErrCliCannotCompress:         "CPU: cannot compress",
	ErrCliAlreadyStop:            "CPU: PLC already STOP",
	ErrCliFunNotAvailable:        "CPU: function not available",
	ErrCliUploadSequenceFailed:   "CPU: upload sequence failed",
	ErrCliInvalidDataSizeRecvd:   "CLI: invalid data size received",
	ErrCliInvalidBlockType:       "CLI: invalid block type",
	ErrCliInvalidBlockNumber:     "CLI: invalid block number",
	ErrCliInvalidBlockSize:       "CLI: invalid block size",
	ErrCliNeedPassword:           "CPU: function not authorized for current protection level",
	ErrCliInvalidPassword:        "CPU: invalid password",
	ErrCliNoPasswordToSetOrClear: "CPU: no password to set or clear",
	ErrCliJobTimeout:             "CLI: job timeout",
	ErrCliPartialDataRead:        "CLI: partial data read",
	ErrCliBufferTooSmall:         "CLI: the buffer supplied is too small",
	ErrCliFunctionRefused:        "CLI: function refused by CPU (unknown error)",
	ErrCliDestroying:             "CLI: cannot perform (destroying)",
	ErrCliInvalidParamNumber:     "CLI: invalid param number",
	ErrCliCannotChangeParam:      "CLI: cannot change this param now",
	ErrCliFunctionNotImplemented: "CLI: function not implemented",
}
