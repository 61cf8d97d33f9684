package bridge

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/types"
)

var intentValidator = validator.New()

// transferPlan is a validated intent with both denominations of the amount resolved.
type transferPlan struct {
	intent types.TransferIntent

	// objectAmount is the raw integer used on the object chain; it always fits a u64.
	objectAmount types.TransferAmount
	// accountAmount is the 18 decimal amount used on the account chain.
	accountAmount types.TransferAmount
}

func (p transferPlan) destinationLeg() types.DestinationLeg {
	return types.DestinationLeg{
		IntentID:           p.intent.ID,
		Direction:          p.intent.Direction,
		ObjectChainAmount:  p.objectAmount,
		AccountChainAmount: p.accountAmount,
		Recipient:          p.intent.Destination,
	}
}

// planTransfer checks the shape of intent without touching any chain. Both denominations are
// parsed up front so that an amount valid for one chain but not the other is rejected before
// anything is burned.
func planTransfer(intent types.TransferIntent) (transferPlan, error) {
	if err := intentValidator.Struct(intent); err != nil {
		return transferPlan{}, NewInvalidIntentError(intent.ID, "malformed intent", err)
	}

	if intent.Direction != types.DirectionToObjectChain && intent.Direction != types.DirectionToAccountChain {
		return transferPlan{}, NewInvalidIntentError(intent.ID, "unknown direction "+intent.Direction.String(), nil)
	}
	if intent.Source.Kind() != intent.Direction.SourceKind() {
		return transferPlan{}, NewInvalidIntentError(intent.ID,
			"source must be an "+intent.Direction.SourceKind().String()+" chain address", nil)
	}
	if intent.Destination.Kind() != intent.Direction.DestinationKind() {
		return transferPlan{}, NewInvalidIntentError(intent.ID,
			"destination must be an "+intent.Direction.DestinationKind().String()+" chain address", nil)
	}

	switch intent.Direction {
	case types.DirectionToAccountChain:
		if intent.Asset == nil {
			return transferPlan{}, NewInvalidIntentError(intent.ID, "a coin object must be selected", nil)
		}
		if err := intentValidator.Struct(intent.Asset); err != nil {
			return transferPlan{}, NewInvalidIntentError(intent.ID, "malformed coin object reference", err)
		}
	case types.DirectionToObjectChain:
		if intent.Asset != nil {
			return transferPlan{}, NewInvalidIntentError(intent.ID, "a coin object only applies to object chain sources", nil)
		}
	}

	objectAmount, accountAmount, err := resolveAmounts(intent.Amount)
	if err != nil {
		return transferPlan{}, NewInvalidIntentError(intent.ID, "amount", err)
	}

	return transferPlan{
		intent:        intent,
		objectAmount:  objectAmount,
		accountAmount: accountAmount,
	}, nil
}

// resolveAmounts parses text in both denominations.
func resolveAmounts(text string) (objectAmount, accountAmount types.TransferAmount, err error) {
	accountAmount, err = codec.ParseDenominatedAmount(text, codec.WeiUnits)
	if err != nil {
		return types.TransferAmount{}, types.TransferAmount{}, err
	}

	objectAmount, err = codec.ParseDenominatedAmount(text, codec.RawUnits)
	if err != nil {
		return types.TransferAmount{}, types.TransferAmount{}, err
	}
	if _, err := objectAmount.Uint64(); err != nil {
		return types.TransferAmount{}, types.TransferAmount{}, err
	}

	return objectAmount, accountAmount, nil
}

// NewDestinationLeg rebuilds the destination leg of a committed transfer from the amount the
// user originally entered, for use with RetryDestinationLeg.
func NewDestinationLeg(intentID string, direction types.Direction, amount string, recipient types.ChainAddress) (types.DestinationLeg, error) {
	objectAmount, accountAmount, err := resolveAmounts(amount)
	if err != nil {
		return types.DestinationLeg{}, NewInvalidIntentError(intentID, "amount", err)
	}

	pending := types.DestinationLeg{
		IntentID:           intentID,
		Direction:          direction,
		ObjectChainAmount:  objectAmount,
		AccountChainAmount: accountAmount,
		Recipient:          recipient,
	}
	if err := validatePending(pending); err != nil {
		return types.DestinationLeg{}, err
	}

	return pending, nil
}

// IsInvalidIntent reports whether err rejected an intent before any chain interaction.
func IsInvalidIntent(err error) bool {
	var target *InvalidIntentError
	return errors.As(err, &target)
}
