package smc

// AppleSMC user-client protocol constants. The selector addresses the
// SMC handler inside the kernel extension; the one-byte command in
// Data8 picks the sub-operation.
const (
	kernelIndexSMC = 2

	cmdReadBytes   = 5
	cmdWriteBytes  = 6
	cmdReadIndex   = 8
	cmdReadKeyInfo = 9
	cmdReadPLimit  = 11
	cmdReadVers    = 12
)

// bytesLen is the size of the raw value buffer carried in each
// request/response structure.
const bytesLen = 32

// keyLength is the length of every SMC key and type tag.
const keyLength = 4

// VersInfo is the firmware version block of the request structure.
type VersInfo struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Reserved uint8
	Release  uint16
}

// PLimitInfo is the power-limit block of the request structure.
type PLimitInfo struct {
	Version   uint16
	Length    uint16
	CPUPLimit uint32
	GPUPLimit uint32
	MemPLimit uint32
}

// KeyInfo describes a key's value: its byte count, its 4-character
// type tag packed into a uint32, and an attributes byte.
type KeyInfo struct {
	DataSize       uint32
	DataType       uint32
	DataAttributes uint8
}

// KeyData is the fixed request/response structure exchanged with the
// SMC user client. The field order and sizes are part of the kernel
// ABI and must not change.
type KeyData struct {
	Key     uint32
	Vers    VersInfo
	PLimit  PLimitInfo
	KeyInfo KeyInfo
	Result  uint8
	Status  uint8
	Data8   uint8
	Data32  uint32
	Bytes   [bytesLen]byte
}
