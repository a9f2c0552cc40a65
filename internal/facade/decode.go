package facade

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const Unknown = "Unknown"

var errDecode = errors.New("failed to decode contract output")

func at(out []interface{}, i int) interface{} {
	if i < 0 || i >= len(out) {
		return nil
	}

	return out[i]
}

func toBig(v interface{}) *big.Int {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return new(big.Int)
		}
		return new(big.Int).Set(n)
	case uint8:
		return new(big.Int).SetUint64(uint64(n))
	case uint64:
		return new(big.Int).SetUint64(n)
	case int64:
		return big.NewInt(n)
	default:
		return new(big.Int)
	}
}

// toInt64 saturates values outside the int64 range.
func toInt64(v interface{}) int64 {
	n := toBig(v)
	if n.IsInt64() {
		return n.Int64()
	}

	if n.Sign() < 0 {
		return math.MinInt64
	}

	return math.MaxInt64
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}

	return ""
}

func orUnknown(s string) string {
	if len(s) == 0 {
		return Unknown
	}

	return s
}

func toStrings(v interface{}) []string {
	ss, ok := v.([]string)
	if !ok || ss == nil {
		return []string{}
	}

	out := make([]string, len(ss))
	copy(out, ss)

	return out
}

func toInt64s(v interface{}) []int64 {
	ns, ok := v.([]*big.Int)
	if !ok {
		return []int64{}
	}

	out := make([]int64, 0, len(ns))
	for _, n := range ns {
		out = append(out, toInt64(n))
	}

	return out
}

func toAddress(v interface{}) common.Address {
	if a, ok := v.(common.Address); ok {
		return a
	}

	return common.Address{}
}

func toAddresses(v interface{}) []common.Address {
	as, ok := v.([]common.Address)
	if !ok || as == nil {
		return []common.Address{}
	}

	out := make([]common.Address, len(as))
	copy(out, as)

	return out
}

func toBool(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// convert copies an ABI tuple (or tuple slice) into proto, turning the panics of
// abi.ConvertType into an error.
func convert[T any](in interface{}) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errDecode, fmt.Sprint(r))
		}
	}()

	if in == nil {
		return res, errors.Wrap(errDecode, "missing value")
	}

	ptr, ok := abi.ConvertType(in, new(T)).(*T)
	if !ok || ptr == nil {
		return res, errors.Wrapf(errDecode, "unexpected type %T", in)
	}

	return *ptr, nil
}
