package smc

import (
	"github.com/dbsqp/smc-influxdb/internal/errors"
	"github.com/dbsqp/smc-influxdb/internal/logger"
)

// Value is the raw result of one key exchange: the declared size, the
// decoded 4-character type tag, and up to 32 raw bytes. The bytes are
// only meaningful in light of the type tag.
type Value struct {
	Key      string
	DataSize uint32
	DataType string
	Bytes    [bytesLen]byte
}

// Version is the controller firmware version reported by the
// read-version command.
type Version struct {
	Major   uint8
	Minor   uint8
	Build   uint8
	Release uint16
}

// PLimit is the processor power-limit block reported by the
// read-plimit command.
type PLimit struct {
	Version uint16
	Length  uint16
	CPU     uint32
	GPU     uint32
	Mem     uint32
}

// Session owns the single connection to the SMC service. All key
// exchanges serialize on it; ReadKey is only valid between Open and
// Close. A failed exchange leaves the session open for further reads.
type Session struct {
	transport Transport
}

// Open locates the SMC service and establishes the connection.
func Open() (*Session, error) {
	transport, err := openTransport()
	if err != nil {
		return nil, err
	}

	logger.Debug().Msg("SMC session opened")

	return &Session{transport: transport}, nil
}

// NewSession wraps an already-open transport. Used by tests and by any
// caller that manages the connection itself.
func NewSession(transport Transport) *Session {
	return &Session{transport: transport}
}

// Close releases the connection. The session is unusable afterwards.
func (s *Session) Close() error {
	errFactory := errors.New()

	if s == nil || s.transport == nil {
		return errFactory.New(ErrServiceUnavailable)
	}

	err := s.transport.Close()
	s.transport = nil
	if err != nil {
		return err
	}

	logger.Debug().Msg("SMC session closed")

	return nil
}

// ReadKey performs the two-phase exchange for one key: first the
// key-info request for the declared size and type, then the byte read
// for that many bytes. Either phase failing aborts the read; the
// second phase is never attempted after a failed first phase.
func (s *Session) ReadKey(key string) (Value, error) {
	errFactory := errors.New()

	if s == nil || s.transport == nil {
		return Value{}, errFactory.New(ErrServiceUnavailable)
	}
	if len(key) != keyLength {
		return Value{}, errFactory.WithData(ErrInvalidKey, key)
	}

	var in, out KeyData
	in.Key = EncodeKey(key)
	in.Data8 = cmdReadKeyInfo

	if err := s.transport.Call(kernelIndexSMC, &in, &out); err != nil {
		return Value{}, errFactory.Wrap(ErrReadKeyFailed, err).WithMessage("key info request failed: " + key)
	}

	val := Value{
		Key:      key,
		DataSize: out.KeyInfo.DataSize,
		DataType: DecodeType(out.KeyInfo.DataType),
	}
	if val.DataSize > bytesLen {
		return Value{}, errFactory.WithData(ErrInvalidDataSize, val.DataSize)
	}

	in.KeyInfo.DataSize = val.DataSize
	in.Data8 = cmdReadBytes

	if err := s.transport.Call(kernelIndexSMC, &in, &out); err != nil {
		return Value{}, errFactory.Wrap(ErrReadKeyFailed, err).WithMessage("byte read failed: " + key)
	}

	val.Bytes = out.Bytes

	return val, nil
}

// ReadVersion queries the controller firmware version.
func (s *Session) ReadVersion() (Version, error) {
	errFactory := errors.New()

	if s == nil || s.transport == nil {
		return Version{}, errFactory.New(ErrServiceUnavailable)
	}

	var in, out KeyData
	in.Data8 = cmdReadVers

	if err := s.transport.Call(kernelIndexSMC, &in, &out); err != nil {
		return Version{}, errFactory.Wrap(ErrReadVersFailed, err)
	}

	return Version{
		Major:   out.Vers.Major,
		Minor:   out.Vers.Minor,
		Build:   out.Vers.Build,
		Release: out.Vers.Release,
	}, nil
}

// ReadPLimit queries the controller's current power limits.
func (s *Session) ReadPLimit() (PLimit, error) {
	errFactory := errors.New()

	if s == nil || s.transport == nil {
		return PLimit{}, errFactory.New(ErrServiceUnavailable)
	}

	var in, out KeyData
	in.Data8 = cmdReadPLimit

	if err := s.transport.Call(kernelIndexSMC, &in, &out); err != nil {
		return PLimit{}, errFactory.Wrap(ErrReadPLimitFailed, err)
	}

	return PLimit{
		Version: out.PLimit.Version,
		Length:  out.PLimit.Length,
		CPU:     out.PLimit.CPUPLimit,
		GPU:     out.PLimit.GPUPLimit,
		Mem:     out.PLimit.MemPLimit,
	}, nil
}
