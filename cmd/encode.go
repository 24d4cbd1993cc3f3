package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/ledgerio/base58.go/base58"
	"github.com/ledgerio/base58.go/extras/errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	embedChecksum bool
	alphabetName  string
)

func init() {
	cmd := &cobra.Command{
		Use:   "encode <hex>",
		Args:  cobra.ExactArgs(1),
		Short: "Encode a hex payload as base58",
		Run:   encodeCmd,
	}
	cmd.Flags().BoolVar(&embedChecksum, "check", false, "embed a 4-byte checksum over the first payload bytes before encoding")
	cmd.Flags().StringVar(&alphabetName, "alphabet", "ripple", "alphabet to encode with (ripple or bitcoin)")
	RootCmd.AddCommand(cmd)
}

func encodeCmd(cmd *cobra.Command, args []string) {
	payload, err := hex.DecodeString(args[0])
	if err != nil {
		log.Errorln(errors.Prefix("invalid hex payload", err))
		return
	}

	alphabet, err := alphabetByName(alphabetName)
	if err != nil {
		log.Errorln(err)
		return
	}

	encode := base58.Encode
	if embedChecksum {
		encode = base58.EncodeCheck
	}

	encoded, err := encode(payload, alphabet)
	if err != nil {
		log.Errorln(err)
		return
	}
	fmt.Println(encoded)
}

func alphabetByName(name string) (*base58.Alphabet, error) {
	switch name {
	case "ripple":
		return base58.Ripple, nil
	case "bitcoin":
		return base58.Bitcoin, nil
	}
	return nil, errors.Err("unknown alphabet %q, expected ripple or bitcoin", name)
}
