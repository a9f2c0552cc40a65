package tx

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
)

const (
	flowFlag    string = "flow"
	subjectFlag string = "subject"
	waitFlag    string = "wait"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("tx",
		newCheck(),
	)
}

type checkResult struct {
	TxHash      common.Hash  `json:"txHash"`
	BlockNumber uint64       `json:"blockNumber"`
	Status      uint64       `json:"status"`
	GasUsed     uint64       `json:"gasUsed"`
	Outcome     string       `json:"outcome,omitempty"`
	Event       *chain.Event `json:"event,omitempty"`
}

func newCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <hash>",
		Short: "Checks a transaction",
		Long: `Waits for the receipt of a transaction and prints it.
With --flow the receipt is interpreted like the flow would: the success or failure
event of the action contract for --subject decides the outcome.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hash := args[0]
			if len(common.FromHex(hash)) != common.HashLength {
				log.Fatal().Str("hash", hash).Msg("Invalid transaction hash")
			}

			flow, err := cmd.Flags().GetString(flowFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			subject, err := cmd.Flags().GetString(subjectFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			if len(subject) > 0 && !common.IsHexAddress(subject) {
				log.Fatal().Str("subject", subject).Msg("Invalid subject address")
			}

			wait, err := cmd.Flags().GetDuration(waitFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			cfg, err := config.Load()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load config")
			}

			client, err := chain.NewRPCClient(cfg.Chain.RPCURLs)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to chain")
			}
			defer client.Close()

			contracts, err := chain.NewContracts(cfg.Chain)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load contracts")
			}

			txHash := common.HexToHash(hash)
			receipt, err := chain.WaitForReceipt(cmd.Context(), client, txHash, wait, chain.DefaultRetryPolicy())
			if err != nil {
				log.Fatal().Err(err).Str("txHash", txHash.Hex()).Msg("Failed to get receipt")
			}

			res := checkResult{
				TxHash:      txHash,
				BlockNumber: receipt.BlockNumber.Uint64(),
				Status:      receipt.Status,
				GasUsed:     receipt.GasUsed,
			}

			if len(flow) > 0 {
				interpreter, ok := action.InterpreterFor(action.Flow(flow), contracts, common.HexToAddress(subject))
				if !ok {
					log.Fatal().Str("flow", flow).Msg("Flow has no receipt interpretation, use capture, evolve or join")
				}

				outcome := interpreter.Interpret(receipt)
				res.Outcome = outcome.Kind.String()
				res.Event = outcome.Event
			}

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to marshal result")
			}

			fmt.Println(string(out)) //nolint:forbidigo
		},
	}

	cmd.Flags().String(flowFlag, "", "Interpret the receipt as capture, evolve or join.")
	cmd.Flags().String(subjectFlag, "", "Player address the events must name.")
	cmd.Flags().Duration(waitFlag, 30*time.Second, "How long to wait for the receipt.")

	return cmd
}
