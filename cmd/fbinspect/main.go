// fbinspect decodes blocks and transactions and prints them as JSON.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/forwardblock/go-forwardblock/blocks"
	cmdp "github.com/forwardblock/go-forwardblock/cmd"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/transaction"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	vip := viper.New()
	root := &cobra.Command{
		Use:          "fbinspect",
		Short:        "decode and print forwardblock blocks and transactions",
		SilenceUsage: true,
	}
	cmdp.AddCommands(root)
	root.AddCommand(newBlockCmd(vip), newTxCmd(vip))
	return root
}

func newBlockCmd(vip *viper.Viper) *cobra.Command {
	var (
		height uint64
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "block [hex|-]...",
		Short: "decode blocks given as hex arguments, or one per line on stdin with -",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd, vip)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			decoded, err := blocks.DecodeAll(cmd.Context(), p, inputs, height)
			if err != nil {
				return err
			}
			dumps := make([]blocks.Dump, 0, len(decoded))
			for _, b := range decoded {
				p.Log().Debug("decoded block",
					zap.Stringer("hash", b.Hash()),
					zap.Int("txs", len(b.Transactions())),
				)
				dumps = append(dumps, b.Dump(raw))
			}
			return printJSON(cmd.OutOrStdout(), dumps)
		},
	}
	cmd.Flags().Uint64Var(&height, "height", 1, "height the blocks are decoded at")
	cmd.Flags().BoolVar(&raw, "raw", false, "print transactions and receipts as hex")
	return cmd
}

func newTxCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tx [hex|-]...",
		Short: "decode signed transactions given as hex arguments, or one per line on stdin with -",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd, vip)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			type txDump struct {
				Hash     string           `json:"hash"`
				PreImage string           `json:"preImage"`
				Tx       transaction.Dump `json:"tx"`
			}
			dumps := make([]txDump, 0, len(inputs))
			for i, input := range inputs {
				tx, err := transaction.Decode(p.Config, input)
				if err != nil {
					return fmt.Errorf("transaction %d: %w", i, err)
				}
				txHash, err := tx.Hash(p.Config)
				if err != nil {
					return err
				}
				preImage, err := tx.HashPreImage(p.Config)
				if err != nil {
					return err
				}
				dumps = append(dumps, txDump{Hash: txHash.Hex(), PreImage: preImage.Hex(), Tx: tx.Dump()})
			}
			return printJSON(cmd.OutOrStdout(), dumps)
		},
	}
}

func setup(cmd *cobra.Command, vip *viper.Viper) (*core.Protocol, error) {
	conf, err := cmdp.LoadConfig(cmd, vip)
	if err != nil {
		return nil, err
	}
	logger, err := cmdp.NewLogger(conf.LOGGING)
	if err != nil {
		return nil, err
	}
	return cmdp.NewProtocol(conf, logger.Named("fbinspect"))
}

// readInputs decodes hex arguments. A "-" argument reads one hex input per line from in.
func readInputs(in io.Reader, args []string) ([][]byte, error) {
	var encoded []string
	for _, arg := range args {
		if arg != "-" {
			encoded = append(encoded, arg)
			continue
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				encoded = append(encoded, line)
			}
		}
	}
	out := make([][]byte, 0, len(encoded))
	for i, s := range encoded {
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
