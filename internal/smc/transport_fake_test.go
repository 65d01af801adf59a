package smc_test

import (
	"fmt"

	"github.com/dbsqp/smc-influxdb/internal/smc"
)

// Command codes and selector as the kernel service defines them,
// restated here so the fake verifies the wire contract independently.
const (
	selectorSMC = 2

	cmdReadBytes   = 5
	cmdReadKeyInfo = 9
	cmdReadPLimit  = 11
	cmdReadVers    = 12
)

type fakeValue struct {
	dataType string
	bytes    []byte
}

// fakeTransport answers the two-phase exchange from a fixed key table
// and records every request structure it sees.
type fakeTransport struct {
	values    map[string]fakeValue
	failInfo  map[string]bool
	failBytes map[string]bool
	calls     []smc.KeyData
	closed    bool
}

func newFakeTransport(values map[string]fakeValue) *fakeTransport {
	return &fakeTransport{
		values:    values,
		failInfo:  map[string]bool{},
		failBytes: map[string]bool{},
	}
}

func (f *fakeTransport) Call(selector int, in, out *smc.KeyData) error {
	f.calls = append(f.calls, *in)

	if f.closed {
		return fmt.Errorf("transport closed")
	}
	if selector != selectorSMC {
		return fmt.Errorf("unexpected selector %d", selector)
	}

	switch in.Data8 {
	case cmdReadVers:
		out.Vers = smc.VersInfo{Major: 2, Minor: 16, Build: 'f', Release: 0x0200}
		return nil

	case cmdReadPLimit:
		out.PLimit = smc.PLimitInfo{Version: 1, Length: 16, CPUPLimit: 45, GPUPLimit: 20, MemPLimit: 8}
		return nil

	case cmdReadKeyInfo:
		key := smc.DecodeType(in.Key)
		if f.failInfo[key] {
			return fmt.Errorf("key info failure: %s", key)
		}
		val, ok := f.values[key]
		if !ok {
			return fmt.Errorf("no such key: %s", key)
		}
		out.KeyInfo.DataSize = uint32(len(val.bytes))
		out.KeyInfo.DataType = smc.EncodeKey(val.dataType)
		return nil

	case cmdReadBytes:
		key := smc.DecodeType(in.Key)
		if f.failBytes[key] {
			return fmt.Errorf("byte read failure: %s", key)
		}
		val, ok := f.values[key]
		if !ok {
			return fmt.Errorf("no such key: %s", key)
		}
		copy(out.Bytes[:], val.bytes)
		return nil
	}

	return fmt.Errorf("unexpected command %d", in.Data8)
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// fpe2Bytes encodes an RPM value in the fpe2 wire format.
func fpe2Bytes(rpm int) []byte {
	raw := rpm * 4
	return []byte{byte(raw >> 8), byte(raw)}
}
