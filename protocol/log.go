package protocol

import (
	"go.uber.org/zap/zapcore"
)

// The hot wire types implement zapcore.ObjectMarshaler so callers can log
// them with zap.Object without reflection.

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p Position) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("line", p.Line)
	enc.AddUint32("character", p.Character)
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r Range) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("start", r.Start); err != nil {
		return err
	}
	return enc.AddObject("end", r.End)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (l Location) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("uri", string(l.URI))
	return enc.AddObject("range", l.Range)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e TextEdit) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("range", e.Range); err != nil {
		return err
	}
	enc.AddString("newText", e.NewText)
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (d Diagnostic) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("range", d.Range); err != nil {
		return err
	}
	if d.Severity != nil {
		enc.AddInt32("severity", int32(*d.Severity))
	}
	if d.Source != nil {
		enc.AddString("source", *d.Source)
	}
	enc.AddString("message", d.Message)
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m RequestMessage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("jsonrpc", m.JSONRPC)
	enc.AddString("method", m.Method)
	if len(m.ID) > 0 {
		enc.AddByteString("id", m.ID)
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m NotificationMessage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("jsonrpc", m.JSONRPC)
	enc.AddString("method", m.Method)
	return nil
}
