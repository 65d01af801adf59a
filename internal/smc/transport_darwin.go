//go:build darwin && cgo

package smc

/*
#cgo LDFLAGS: -framework IOKit
#include <IOKit/IOKitLib.h>

typedef struct {
	char major;
	char minor;
	char build;
	char reserved[1];
	UInt16 release;
} SMCKeyData_vers_t;

typedef struct {
	UInt16 version;
	UInt16 length;
	UInt32 cpuPLimit;
	UInt32 gpuPLimit;
	UInt32 memPLimit;
} SMCKeyData_pLimitData_t;

typedef struct {
	UInt32 dataSize;
	UInt32 dataType;
	char dataAttributes;
} SMCKeyData_keyInfo_t;

typedef struct {
	UInt32 key;
	SMCKeyData_vers_t vers;
	SMCKeyData_pLimitData_t pLimitData;
	SMCKeyData_keyInfo_t keyInfo;
	char result;
	char status;
	char data8;
	UInt32 data32;
	char bytes[32];
} SMCKeyData_t;

static kern_return_t smcOpenConn(io_connect_t *conn) {
	kern_return_t result;
	io_iterator_t iterator;
	io_object_t device;

	CFMutableDictionaryRef matching = IOServiceMatching("AppleSMC");
	result = IOServiceGetMatchingServices(kIOMainPortDefault, matching, &iterator);
	if (result != kIOReturnSuccess) {
		return result;
	}

	device = IOIteratorNext(iterator);
	IOObjectRelease(iterator);
	if (device == 0) {
		return kIOReturnNoDevice;
	}

	result = IOServiceOpen(device, mach_task_self(), 0, conn);
	IOObjectRelease(device);

	return result;
}

static kern_return_t smcCallStruct(io_connect_t conn, int selector, SMCKeyData_t *in, SMCKeyData_t *out) {
	size_t inSize = sizeof(SMCKeyData_t);
	size_t outSize = sizeof(SMCKeyData_t);

	return IOConnectCallStructMethod(conn, selector, in, inSize, out, &outSize);
}
*/
import "C"

import (
	"github.com/dbsqp/smc-influxdb/internal/errors"
)

// iokitTransport is the production Transport, backed by an open
// io_connect_t against the AppleSMC kernel service.
type iokitTransport struct {
	conn C.io_connect_t
}

func openTransport() (Transport, error) {
	errFactory := errors.New()

	var conn C.io_connect_t
	if result := C.smcOpenConn(&conn); result != C.kIOReturnSuccess {
		if result == C.kIOReturnNoDevice {
			return nil, errFactory.WithData(ErrServiceUnavailable, "no SMC service found")
		}

		return nil, errFactory.WithData(ErrOpenFailed, int64(result))
	}

	return &iokitTransport{conn: conn}, nil
}

func (t *iokitTransport) Call(selector int, in, out *KeyData) error {
	errFactory := errors.New()

	var cIn, cOut C.SMCKeyData_t
	packKeyData(in, &cIn)

	if result := C.smcCallStruct(t.conn, C.int(selector), &cIn, &cOut); result != C.kIOReturnSuccess {
		return errFactory.WithData(ErrReadKeyFailed, int64(result))
	}

	unpackKeyData(&cOut, out)

	return nil
}

func (t *iokitTransport) Close() error {
	errFactory := errors.New()

	if result := C.IOServiceClose(t.conn); result != C.kIOReturnSuccess {
		return errFactory.WithData(ErrCloseFailed, int64(result))
	}

	return nil
}

func packKeyData(in *KeyData, out *C.SMCKeyData_t) {
	out.key = C.UInt32(in.Key)
	out.vers.major = C.char(in.Vers.Major)
	out.vers.minor = C.char(in.Vers.Minor)
	out.vers.build = C.char(in.Vers.Build)
	out.vers.reserved[0] = C.char(in.Vers.Reserved)
	out.vers.release = C.UInt16(in.Vers.Release)
	out.pLimitData.version = C.UInt16(in.PLimit.Version)
	out.pLimitData.length = C.UInt16(in.PLimit.Length)
	out.pLimitData.cpuPLimit = C.UInt32(in.PLimit.CPUPLimit)
	out.pLimitData.gpuPLimit = C.UInt32(in.PLimit.GPUPLimit)
	out.pLimitData.memPLimit = C.UInt32(in.PLimit.MemPLimit)
	out.keyInfo.dataSize = C.UInt32(in.KeyInfo.DataSize)
	out.keyInfo.dataType = C.UInt32(in.KeyInfo.DataType)
	out.keyInfo.dataAttributes = C.char(in.KeyInfo.DataAttributes)
	out.result = C.char(in.Result)
	out.status = C.char(in.Status)
	out.data8 = C.char(in.Data8)
	out.data32 = C.UInt32(in.Data32)
	for i := range in.Bytes {
		out.bytes[i] = C.char(in.Bytes[i])
	}
}

func unpackKeyData(in *C.SMCKeyData_t, out *KeyData) {
	out.Key = uint32(in.key)
	out.Vers.Major = uint8(in.vers.major)
	out.Vers.Minor = uint8(in.vers.minor)
	out.Vers.Build = uint8(in.vers.build)
	out.Vers.Reserved = uint8(in.vers.reserved[0])
	out.Vers.Release = uint16(in.vers.release)
	out.PLimit.Version = uint16(in.pLimitData.version)
	out.PLimit.Length = uint16(in.pLimitData.length)
	out.PLimit.CPUPLimit = uint32(in.pLimitData.cpuPLimit)
	out.PLimit.GPUPLimit = uint32(in.pLimitData.gpuPLimit)
	out.PLimit.MemPLimit = uint32(in.pLimitData.memPLimit)
	out.KeyInfo.DataSize = uint32(in.keyInfo.dataSize)
	out.KeyInfo.DataType = uint32(in.keyInfo.dataType)
	out.KeyInfo.DataAttributes = uint8(in.keyInfo.dataAttributes)
	out.Result = uint8(in.result)
	out.Status = uint8(in.status)
	out.Data8 = uint8(in.data8)
	out.Data32 = uint32(in.data32)
	for i := range out.Bytes {
		out.Bytes[i] = byte(in.bytes[i])
	}
}
