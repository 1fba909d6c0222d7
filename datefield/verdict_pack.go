package datefield

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteVerdictsMsgpack writes verdicts as one MessagePack array.
func WriteVerdictsMsgpack(w io.Writer, vs []Verdict) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(vs)); err != nil {
		return err
	}
	for i := range vs {
		vs[i].Clean()
		if err := enc.Encode(&vs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadVerdictsMsgpack reads an array written by WriteVerdictsMsgpack.
func ReadVerdictsMsgpack(r io.Reader, fn func(Verdict) error) error {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var v Verdict
		if err := dec.Decode(&v); err != nil {
			return err
		}
		v.Clean()
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
