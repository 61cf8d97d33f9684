// Package asset checks coin objects on the object chain before they are spent.
package asset

import (
	"context"

	"github.com/smartcontractkit/ibt-bridge/sdk"
	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// Validator confirms the runtime type and ownership of a selected coin object immediately
// before it is consumed. It is read-only and holds no state besides the reader.
//
// A successful validation does not reserve the object: it can still be spent or transferred
// before the burn transaction lands, the chain remains the final arbiter.
type Validator struct {
	reader sdk.ObjectChainReader
}

func NewValidator(reader sdk.ObjectChainReader) *Validator {
	return &Validator{reader: reader}
}

// Validate fetches ref fresh from the chain and checks it against expectedType, by exact string
// equality, and expectedOwner.
func (v *Validator) Validate(
	ctx context.Context,
	ref types.AssetReference,
	expectedOwner types.ObjectChainAddress,
	expectedType string,
) error {
	info, err := v.reader.GetObject(ctx, ref.ObjectID)
	if err != nil {
		return sdkerrors.NewObjectLookupFailedError(ref.ObjectID, err)
	}

	if info.Type != expectedType {
		return sdkerrors.NewTypeMismatchError(ref.ObjectID, expectedType, info.Type)
	}

	if info.Owner == nil {
		return sdkerrors.NewOwnershipMismatchError(ref.ObjectID, expectedOwner.Hex(), "")
	}
	if *info.Owner != expectedOwner {
		return sdkerrors.NewOwnershipMismatchError(ref.ObjectID, expectedOwner.Hex(), info.Owner.Hex())
	}

	return nil
}
