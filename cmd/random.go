package cmd

import (
	"fmt"
	"strconv"

	"github.com/ledgerio/base58.go/extras/crypto"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "random <length>",
		Args:  cobra.ExactArgs(1),
		Short: "Generate a random base58 identifier",
		Run:   randomCmd,
	}
	RootCmd.AddCommand(cmd)
}

func randomCmd(cmd *cobra.Command, args []string) {
	length, err := strconv.Atoi(args[0])
	if err != nil || length <= 0 {
		log.Errorln("length must be a positive integer")
		return
	}

	fmt.Println(crypto.RandString(length))
}
