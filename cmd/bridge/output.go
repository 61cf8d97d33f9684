package bridge

import (
	"fmt"
	"io"

	"github.com/smartcontractkit/ibt-bridge/types"
)

// printOutcome writes a summary of outcome to out. A nil outcome, as returned for invalid
// intents, prints nothing.
func printOutcome(out io.Writer, outcome *types.TransferOutcome) {
	if outcome == nil {
		return
	}

	fmt.Fprintf(out, "Transfer %s (%s): %s\n", outcome.IntentID, outcome.Direction, outcome.Kind)
	if r := outcome.SourceReceipt; r != nil {
		fmt.Fprintf(out, "  source      %s tx %s block %d\n", r.Chain, r.TxHash, r.Block)
	}
	if r := outcome.DestinationReceipt; r != nil {
		fmt.Fprintf(out, "  destination %s tx %s block %d\n", r.Chain, r.TxHash, r.Block)
	}

	if !outcome.RequiresReconciliation() || outcome.PendingDestination == nil {
		return
	}

	pending := outcome.PendingDestination
	amount := pending.ObjectChainAmount.String()
	if pending.Direction == types.DirectionToAccountChain {
		amount = pending.AccountChainAmount.String()
	}
	fmt.Fprintf(out, "\nThe burn confirmed but the mint of %s to %s did not.\n", amount, pending.Recipient)
	fmt.Fprintln(out, "After checking that the mint did not land, complete the transfer with:")
	// The raw object-chain amount is the integer the user entered.
	fmt.Fprintf(out, "  bridge retry-mint --intent %s --direction %s --amount %s --recipient %s\n",
		pending.IntentID, pending.Direction, pending.ObjectChainAmount, pending.Recipient)
}
