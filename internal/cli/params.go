package cli

import (
	"encoding/json"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/rafaelescrich/secp256k1-keygen/curve"
)

type paramsRecord struct {
	Name    string `json:"name"`
	P       string `json:"p"`
	A       string `json:"a"`
	B       string `json:"b"`
	Gx      string `json:"gx"`
	Gy      string `json:"gy"`
	N       string `json:"n"`
	BitSize int    `json:"bit_size"`
}

func (a *app) paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the secp256k1 domain parameters in hexadecimal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := curve.Secp256k1()
			hexOf := func(v *big.Int) string { return "0x" + v.Text(16) }

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(paramsRecord{
				Name:    c.Name(),
				P:       hexOf(c.P()),
				A:       hexOf(c.A()),
				B:       hexOf(c.B()),
				Gx:      hexOf(c.Gx()),
				Gy:      hexOf(c.Gy()),
				N:       hexOf(c.N()),
				BitSize: c.BitSize(),
			})
		},
	}
}
