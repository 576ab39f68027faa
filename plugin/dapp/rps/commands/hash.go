// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/spf13/cobra"
)

//HashCmd 计算出手的承诺, 不需要打开数据库
func HashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the commitment of a move and secret",
		Run:   hash,
	}
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().Uint64P("secret", "k", 0, "secret number of the move")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func hash(cmd *cobra.Command, args []string) {
	move, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetUint64("secret")

	m, err := rt.ParseMove(move)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), rt.CommitmentOf(m, secret).String())
}
