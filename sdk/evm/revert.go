package evm

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	selectorSize = 4
	revertPrefix = "revert:"
)

var (
	// customErrorPattern matches "custom error 0x<selector>: <hex data>" as printed by some nodes.
	customErrorPattern = regexp.MustCompile(`custom error 0x([0-9a-fA-F]{8}):?\s*([0-9a-fA-F\s]*)`)
	hexPattern         = regexp.MustCompile(`0x[0-9a-fA-F]{8,}`)
)

// RevertError is returned when a token transaction is rejected at submission because executing
// it would revert. Nothing was broadcast.
type RevertError struct {
	// Reason is the decoded revert reason, e.g. "ERC20InsufficientBalance(0x.., 1, 2)". Empty when
	// the data matches no known error.
	Reason string
	// Data is the raw revert data including the selector.
	Data []byte
	Err  error
}

func (e *RevertError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("execution reverted: %s: %v", e.Reason, e.Err)
	}
	if len(e.Data) > 0 {
		return fmt.Sprintf("execution reverted with data 0x%s: %v", common.Bytes2Hex(e.Data), e.Err)
	}

	return fmt.Sprintf("execution reverted: %v", e.Err)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// asRevertError decodes the revert carried by err against contractABI. err is returned unchanged
// when it does not describe a revert.
func asRevertError(contractABI *abi.ABI, err error) error {
	if err == nil {
		return nil
	}

	if data := revertData(err); len(data) > 0 {
		return &RevertError{Reason: decodeRevert(contractABI, data), Data: data, Err: err}
	}

	errStr := err.Error()
	if idx := strings.Index(errStr, revertPrefix); idx != -1 {
		if reason := strings.TrimSpace(errStr[idx+len(revertPrefix):]); reason != "" {
			return &RevertError{Reason: reason, Err: err}
		}
	}

	return err
}

func revertData(err error) []byte {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(s); decodeErr == nil && len(data) >= selectorSize {
				return data
			}
		}
	}

	errStr := err.Error()
	if m := customErrorPattern.FindStringSubmatch(errStr); m != nil {
		return common.FromHex(m[1] + strings.Join(strings.Fields(m[2]), ""))
	}
	if !strings.Contains(errStr, "revert") {
		return nil
	}
	if s := hexPattern.FindString(errStr); s != "" {
		return common.FromHex(s)
	}

	return nil
}

// decodeRevert matches the selector against the custom errors of contractABI, then falls back to
// Error(string) and Panic(uint256).
func decodeRevert(contractABI *abi.ABI, data []byte) string {
	if len(data) < selectorSize {
		return ""
	}

	if contractABI != nil {
		for name, errDef := range contractABI.Errors {
			if !bytes.Equal(errDef.ID[:selectorSize], data[:selectorSize]) {
				continue
			}
			values, err := errDef.Inputs.Unpack(data[selectorSize:])
			if err != nil {
				continue
			}

			return formatDecodedError(name, values)
		}
	}

	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason
	}

	return ""
}

func formatDecodedError(name string, values []any) string {
	if len(values) == 0 {
		return name
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%v", v))
	}

	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
