package cli

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	secp256k1 "github.com/rafaelescrich/secp256k1-keygen"
	"github.com/rafaelescrich/secp256k1-keygen/bigint"
)

type keyRecord struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Hash160    string `json:"hash160"`
}

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key pairs, one JSON object per line",
		Args:  cobra.NoArgs,
		RunE:  a.generate,
	}

	flags := cmd.Flags()
	flags.Int("count", 1, "number of key pairs to generate")
	flags.String("seed", "", "derive keys deterministically from this seed (testing only)")
	flags.Bool("compressed", true, "print public keys in compressed SEC 1 form")
	flags.Bool("precompute", false, "derive public keys through a precomputed generator table")
	a.bind(flags, "count", "seed", "compressed", "precompute")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, _ []string) error {
	count := a.v.GetInt("count")
	if count < 1 {
		return errors.Errorf("count must be positive, got %d", count)
	}

	opts := []secp256k1.Option{secp256k1.WithLogger(a.logger)}
	if seed := a.v.GetString("seed"); seed != "" {
		src, err := bigint.NewSeededSource([]byte(seed))
		if err != nil {
			return err
		}
		a.logger.Warn("Using a deterministic seed, generated keys are not secret")
		opts = append(opts, secp256k1.WithRandomSource(src))
	}
	if a.v.GetBool("precompute") {
		ctx := secp256k1.NewContext(nil)
		if !ctx.ValidatePrecomputedTables() {
			return errors.New("precomputed generator table is inconsistent")
		}
		opts = append(opts, secp256k1.WithContext(ctx))
	}
	gen := secp256k1.NewKeyGenerator(opts...)

	compressed := a.v.GetBool("compressed")
	enc := json.NewEncoder(cmd.OutOrStdout())
	for i := 0; i < count; i++ {
		kp, err := gen.GenerateKeyPair()
		if err != nil {
			return err
		}

		pub := kp.Public.SerializeCompressed()
		if !compressed {
			pub = kp.Public.SerializeUncompressed()
		}
		rec := keyRecord{
			PrivateKey: hex.EncodeToString(kp.Private.Bytes()),
			PublicKey:  hex.EncodeToString(pub),
			Hash160:    hex.EncodeToString(kp.Public.Hash160()),
		}
		if err := enc.Encode(rec); err != nil {
			return errors.Wrap(err, "writing key pair")
		}
		a.logger.Debug("Generated key pair", zap.Int("index", i), zap.String("hash160", rec.Hash160))
	}

	a.logger.Info("Generated key pairs", zap.Int("count", count))
	return nil
}
