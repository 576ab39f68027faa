// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/plugin/dapp/rps/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "rock paper scissors game on local state store",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "rps.toml", "config file")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.ChallengeCmd(),
		commands.HashCmd(),
	)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
