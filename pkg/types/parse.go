package types

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Parse materializes a text token under meta's type. Used by readers
// turning external data into typed values.
func Parse(meta DataTypeMeta, s string) (DataType, error) {
	switch meta.GetCode() {
	case TYPE_INTEGER:
		m := meta.(*DataTypeINTEGERMeta)
		if m.Signed {
			v, err := strconv.ParseInt(s, 10, 8*int(m.ByteSize))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse integer '%s'", s)
			}
			return Type(meta).Set(v), nil
		}
		v, err := strconv.ParseUint(s, 10, 8*int(m.ByteSize))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse integer '%s'", s)
		}
		return Type(meta).Set(v), nil

	case TYPE_FLOAT:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse float '%s'", s)
		}
		return Type(meta).Set(v), nil

	case TYPE_DATETIME:
		v, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse datetime '%s'", s)
		}
		return Type(meta).Set(v), nil

	case TYPE_BOOLEAN:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse boolean '%s'", s)
		}
		return Type(meta).Set(v), nil

	case TYPE_VARCHAR:
		m := meta.(*DataTypeVARCHARMeta)
		if len(s) > int(m.Cap) {
			return nil, errors.Errorf("varchar overflow => %d > %d", len(s), m.Cap)
		}
		return Type(meta).Set(s), nil

	case TYPE_STRING, TYPE_JSON:
		return Type(meta).Set(s), nil
	}

	return nil, errors.Errorf("unknown type code => %v", meta.GetCode())
}
