package cli

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	secp256k1 "github.com/rafaelescrich/secp256k1-keygen"
	"github.com/rafaelescrich/secp256k1-keygen/bigint"
	"github.com/rafaelescrich/secp256k1-keygen/group"
)

type checkRecord struct {
	OnCurve bool   `json:"on_curve"`
	X       string `json:"x,omitempty"`
	Y       string `json:"y,omitempty"`
	Hash160 string `json:"hash160,omitempty"`
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [sec-hex]",
		Short: "Validate a SEC 1 encoded public key, or decimal coordinates given with --x and --y",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.check,
	}

	flags := cmd.Flags()
	flags.String("x", "", "decimal x coordinate")
	flags.String("y", "", "decimal y coordinate")
	return cmd
}

func (a *app) check(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())

	if len(args) == 1 {
		b, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(err, "decoding public key")
		}
		pub, err := secp256k1.ParsePublicKey(b)
		if err != nil {
			a.logger.Warn("Rejected public key", zap.Error(err))
			return err
		}
		return enc.Encode(checkRecord{
			OnCurve: true,
			X:       pub.X().String(),
			Y:       pub.Y().String(),
			Hash160: hex.EncodeToString(pub.Hash160()),
		})
	}

	xs, _ := cmd.Flags().GetString("x")
	ys, _ := cmd.Flags().GetString("y")
	if xs == "" || ys == "" {
		return errors.New("either a SEC 1 public key or both --x and --y are required")
	}
	x, err := bigint.ParseDecimal(xs)
	if err != nil {
		return err
	}
	y, err := bigint.ParseDecimal(ys)
	if err != nil {
		return err
	}

	onCurve := secp256k1.IsOnCurve(x, y)
	if err := enc.Encode(checkRecord{OnCurve: onCurve, X: x.String(), Y: y.String()}); err != nil {
		return err
	}
	if !onCurve {
		return errors.Wrapf(group.ErrCurveViolation, "(%s, %s)", x, y)
	}
	return nil
}
